// Package migrations contains embedded SQL migrations for the SQLite
// telemetry journal.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
