package storage

import (
	"context"
	"time"

	apperrors "github.com/apitofinal/shootout/internal/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrLockTimeout indicates the document lock could not be acquired in time.
var ErrLockTimeout = apperrors.New(apperrors.CodeStorageLockTimeout, "document lock timeout")

// PenaltyRecord is the persisted shape of a shootout. Field values are
// wire strings; decoding back into engine types validates them.
type PenaltyRecord struct {
	Initial int             `json:"initial"`
	Starts  string          `json:"starts"`
	Stage   string          `json:"stage"`
	Home    []string        `json:"home"`
	Away    []string        `json:"away"`
	Next    *NextKickRecord `json:"next"`
	Winner  *string         `json:"winner"`
}

// NextKickRecord identifies the kick that should be taken next.
type NextKickRecord struct {
	Team  string `json:"team"`
	Index int    `json:"index"`
}

// MatchStore loads and saves the penalties block of a field's match
// document.
type MatchStore interface {
	LoadPenalties(ctx context.Context, field string) (PenaltyRecord, error)
	SavePenalties(ctx context.Context, field string, record PenaltyRecord) error
}

// TelemetryEvent captures a structured engine event for the local
// journal.
type TelemetryEvent struct {
	Timestamp time.Time
	EventName string
	Severity  string
	Field     string
	TraceID   string
	SpanID    string

	// Attributes carries event payload; AttributesJSON holds its
	// serialized form when reading back from a store.
	Attributes     map[string]any
	AttributesJSON []byte
}

// TelemetryStore appends telemetry events to a durable journal.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, event TelemetryEvent) error
}
