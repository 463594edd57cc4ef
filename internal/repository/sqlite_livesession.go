package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/domain"
)

// SQLiteLiveSessionRepo implements LiveSessionRepo against the local catalogue.
type SQLiteLiveSessionRepo struct {
	db db.DBTX
}

// NewSQLiteLiveSessionRepo creates a new SQLiteLiveSessionRepo.
func NewSQLiteLiveSessionRepo(conn db.DBTX) *SQLiteLiveSessionRepo {
	return &SQLiteLiveSessionRepo{db: conn}
}

func (r *SQLiteLiveSessionRepo) Create(ctx context.Context, ref *domain.LiveSessionRef) error {
	query := `INSERT INTO live_sessions (id, lesson_id, provider, join_url, starts_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ref.ID,
		ref.LessonID,
		ref.Provider,
		ref.JoinURL,
		nullableTimeToString(ref.StartsAt, time.RFC3339),
		ref.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting live session: %w", err)
	}
	return nil
}

func (r *SQLiteLiveSessionRepo) FetchForLesson(ctx context.Context, lessonID string) (*domain.LiveSessionRef, error) {
	query := `SELECT id, lesson_id, provider, join_url, starts_at, created_at
		FROM live_sessions WHERE lesson_id = ?`
	row := r.db.QueryRowContext(ctx, query, lessonID)

	var ref domain.LiveSessionRef
	var startsAt sql.NullString
	var createdAtStr string

	err := row.Scan(&ref.ID, &ref.LessonID, &ref.Provider, &ref.JoinURL, &startsAt, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("live session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning live session: %w", err)
	}

	ref.StartsAt = parseNullableTime(startsAt, time.RFC3339)
	ref.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &ref, nil
}
