// Package sqlite persists the engine telemetry journal in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/apitofinal/shootout/internal/platform/storage/sqlitemigrate"
	"github.com/apitofinal/shootout/internal/storage"
	"github.com/apitofinal/shootout/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed telemetry persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the telemetry journal and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendTelemetryEvent records one structured engine event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, event storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	event.EventName = strings.TrimSpace(event.EventName)
	event.Severity = strings.TrimSpace(event.Severity)
	event.Field = strings.TrimSpace(event.Field)
	if event.EventName == "" {
		return fmt.Errorf("event name is required")
	}
	if event.Severity == "" {
		return fmt.Errorf("severity is required")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if len(event.AttributesJSON) == 0 && len(event.Attributes) > 0 {
		payload, err := json.Marshal(event.Attributes)
		if err != nil {
			return fmt.Errorf("marshal telemetry attributes: %w", err)
		}
		event.AttributesJSON = payload
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO telemetry_events (
	timestamp,
	event_name,
	severity,
	field,
	trace_id,
	span_id,
	attributes_json
) VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		event.Timestamp.UTC().UnixMilli(),
		event.EventName,
		event.Severity,
		toNullString(event.Field),
		toNullString(event.TraceID),
		toNullString(event.SpanID),
		event.AttributesJSON,
	)
	if err != nil {
		return fmt.Errorf("append telemetry event: %w", err)
	}
	return nil
}

// ListTelemetryEvents lists newest-first telemetry events.
func (s *Store) ListTelemetryEvents(ctx context.Context, limit int) ([]storage.TelemetryEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	timestamp,
	event_name,
	severity,
	field,
	trace_id,
	span_id,
	attributes_json
FROM telemetry_events
ORDER BY timestamp DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list telemetry events: %w", err)
	}
	defer rows.Close()

	events := make([]storage.TelemetryEvent, 0, limit)
	for rows.Next() {
		var event storage.TelemetryEvent
		var timestamp int64
		var field, traceID, spanID sql.NullString
		if err := rows.Scan(
			&timestamp,
			&event.EventName,
			&event.Severity,
			&field,
			&traceID,
			&spanID,
			&event.AttributesJSON,
		); err != nil {
			return nil, fmt.Errorf("scan telemetry event: %w", err)
		}
		event.Timestamp = time.UnixMilli(timestamp).UTC()
		event.Field = field.String
		event.TraceID = traceID.String
		event.SpanID = spanID.String
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate telemetry events: %w", err)
	}
	return events, nil
}

func toNullString(value string) sql.NullString {
	if strings.TrimSpace(value) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

var _ storage.TelemetryStore = (*Store)(nil)
