// Package sqlitemigrate applies embedded SQL migrations at startup.
//
// Migration files run in lexical order, at most once each, tracked in
// a schema_migrations table. Files may carry -- +migrate Up / Down
// markers; only the Up section is executed.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const migrationTable = "schema_migrations"

type migration struct {
	name string
	stmt string
}

// ApplyMigrations runs every not-yet-applied .sql file from fsys under
// root, each inside its own transaction.
func ApplyMigrations(ctx context.Context, sqlDB *sql.DB, fsys fs.FS, root string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}

	migrations, err := loadMigrations(fsys, root)
	if err != nil {
		return err
	}
	if err := ensureMigrationTable(ctx, sqlDB); err != nil {
		return err
	}
	for _, m := range migrations {
		if err := applyMigration(ctx, sqlDB, m); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrations(fsys fs.FS, root string) ([]migration, error) {
	dir := strings.TrimSpace(root)
	if dir == "" {
		dir = "."
	}
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var migrations []migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		name := entry.Name()
		if dir != "." {
			name = path.Join(dir, entry.Name())
		}
		migrations = append(migrations, migration{name: name, stmt: UpSQL(string(content))})
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].name < migrations[j].name })
	return migrations, nil
}

func ensureMigrationTable(ctx context.Context, sqlDB *sql.DB) error {
	_, err := sqlDB.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS `+migrationTable+` (
	name TEXT PRIMARY KEY,
	applied_at INTEGER NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	return nil
}

func applyMigration(ctx context.Context, sqlDB *sql.DB, m migration) error {
	applied, err := migrationApplied(ctx, sqlDB, m.name)
	if err != nil {
		return fmt.Errorf("check migration %s: %w", m.name, err)
	}
	if applied || strings.TrimSpace(m.stmt) == "" {
		return nil
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.name, err)
	}
	if _, err := tx.ExecContext(ctx, m.stmt); err != nil && !alreadyApplied(err) {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", m.name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		m.name,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", m.name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.name, err)
	}
	return nil
}

func migrationApplied(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var one int
	err := sqlDB.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpSQL returns the statements in the -- +migrate Up section, or the
// whole content when no markers are present.
func UpSQL(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len("-- +migrate Up"):]
	if downIdx := strings.Index(rest, "-- +migrate Down"); downIdx != -1 {
		rest = rest[:downIdx]
	}
	return rest
}

// alreadyApplied reports whether a DDL error indicates the object was
// created by a pre-tracking deployment.
func alreadyApplied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column name")
}
