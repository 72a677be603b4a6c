// Package telemetry records structured engine events for local
// inspection. Events are journaled through a TelemetryStore; an
// emitter without a store drops events silently.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/apitofinal/shootout/internal/storage"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Emitter records operational telemetry events for one field.
type Emitter struct {
	store storage.TelemetryStore
	field string
	clock func() time.Time
}

// NewEmitter creates an emitter journaling to store, stamping every
// event with the given field key.
func NewEmitter(store storage.TelemetryStore, field string) *Emitter {
	return &Emitter{store: store, field: field, clock: time.Now}
}

// WithClock overrides the timestamp source. Useful in tests.
func (e *Emitter) WithClock(clock func() time.Time) *Emitter {
	if e == nil || clock == nil {
		return e
	}
	e.clock = clock
	return e
}

// Emit records an event with the given name, severity, and payload.
// The active trace context, when present, is stamped onto the event.
// It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, name string, severity Severity, attributes map[string]any) error {
	if e == nil || e.store == nil {
		return nil
	}

	evt := storage.TelemetryEvent{
		EventName:  name,
		Severity:   string(severity),
		Field:      e.field,
		Attributes: attributes,
	}
	if e.clock == nil {
		evt.Timestamp = time.Now().UTC()
	} else {
		evt.Timestamp = e.clock().UTC()
	}
	if span := trace.SpanContextFromContext(ctx); span.IsValid() {
		evt.TraceID = span.TraceID().String()
		evt.SpanID = span.SpanID().String()
	}
	return e.store.AppendTelemetryEvent(ctx, evt)
}
