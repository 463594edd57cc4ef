package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS lessons (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		subject     TEXT NOT NULL DEFAULT '',
		lesson_date TEXT,
		status      TEXT NOT NULL DEFAULT 'draft'
		            CHECK(status IN ('draft','published','archived')),
		session_id  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS lesson_content (
		id                TEXT PRIMARY KEY,
		lesson_id         TEXT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
		content_type      TEXT NOT NULL,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		url               TEXT NOT NULL DEFAULT '',
		content_data      TEXT,
		sequence_order    INTEGER NOT NULL DEFAULT 0,
		estimated_minutes INTEGER NOT NULL DEFAULT 0,
		is_published      INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_lesson_content_lesson ON lesson_content(lesson_id)`,
	`CREATE INDEX IF NOT EXISTS idx_lesson_content_order ON lesson_content(lesson_id, sequence_order)`,

	`CREATE TABLE IF NOT EXISTS live_sessions (
		id         TEXT PRIMARY KEY,
		lesson_id  TEXT NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
		provider   TEXT NOT NULL DEFAULT '',
		join_url   TEXT NOT NULL,
		starts_at  TEXT,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_live_sessions_lesson ON live_sessions(lesson_id)`,

	// Viewer-local state: completion sets and lesson notes, keyed by the
	// lesson_{id}_completed / lesson_note_{id} scheme.
	`CREATE TABLE IF NOT EXISTS viewer_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
