package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
)

// SQLiteKeyValueRepo implements KeyValueRepo on the viewer_state table.
// Each Set is a single upsert statement, so a write is durable before
// the call returns and a toggle is never observed half-applied.
type SQLiteKeyValueRepo struct {
	db db.DBTX
}

// NewSQLiteKeyValueRepo creates a new SQLiteKeyValueRepo.
func NewSQLiteKeyValueRepo(conn db.DBTX) *SQLiteKeyValueRepo {
	return &SQLiteKeyValueRepo{db: conn}
}

func (r *SQLiteKeyValueRepo) Get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM viewer_state WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("key %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading viewer state: %w", err)
	}
	return value, nil
}

func (r *SQLiteKeyValueRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO viewer_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing viewer state: %w", err)
	}
	return nil
}

func (r *SQLiteKeyValueRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM viewer_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting viewer state: %w", err)
	}
	return nil
}
