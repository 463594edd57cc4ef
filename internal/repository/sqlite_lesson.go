package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/domain"
)

// SQLiteLessonRepo implements LessonRepo against the local catalogue.
type SQLiteLessonRepo struct {
	db db.DBTX
}

// NewSQLiteLessonRepo creates a new SQLiteLessonRepo.
func NewSQLiteLessonRepo(conn db.DBTX) *SQLiteLessonRepo {
	return &SQLiteLessonRepo{db: conn}
}

func (r *SQLiteLessonRepo) Create(ctx context.Context, l *domain.Lesson) error {
	query := `INSERT INTO lessons (id, title, description, subject, lesson_date, status, session_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.Description,
		l.Subject,
		nullableTimeToString(l.LessonDate, time.RFC3339),
		string(l.Status),
		l.SessionID,
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting lesson: %w", err)
	}
	return nil
}

// FetchLesson returns the lesson with its full content list.
// The content slice carries every item, published or not; viewing-side
// filtering happens in the domain layer.
func (r *SQLiteLessonRepo) FetchLesson(ctx context.Context, id string) (*domain.Lesson, error) {
	query := `SELECT id, title, description, subject, lesson_date, status, session_id, created_at, updated_at
		FROM lessons WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	lesson, err := r.scanLesson(row)
	if err != nil {
		return nil, err
	}

	content := NewSQLiteContentRepo(r.db)
	items, err := content.ListByLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	lesson.Content = items
	return lesson, nil
}

func (r *SQLiteLessonRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Lesson, error) {
	query := `SELECT id, title, description, subject, lesson_date, status, session_id, created_at, updated_at
		FROM lessons`
	if !includeArchived {
		query += ` WHERE status != 'archived'`
	}
	query += ` ORDER BY lesson_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*domain.Lesson
	for rows.Next() {
		lesson, err := r.scanLessonRow(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lessons: %w", err)
	}
	return lessons, nil
}

func (r *SQLiteLessonRepo) Update(ctx context.Context, l *domain.Lesson) error {
	query := `UPDATE lessons SET title = ?, description = ?, subject = ?, lesson_date = ?,
		status = ?, session_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Title,
		l.Description,
		l.Subject,
		nullableTimeToString(l.LessonDate, time.RFC3339),
		string(l.Status),
		l.SessionID,
		time.Now().UTC().Format(time.RFC3339),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lesson: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("lesson %s: %w", l.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteLessonRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting lesson: %w", err)
	}
	return nil
}

func (r *SQLiteLessonRepo) scanLesson(row *sql.Row) (*domain.Lesson, error) {
	var l domain.Lesson
	var lessonDate sql.NullString
	var status, createdAtStr, updatedAtStr string

	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Subject, &lessonDate, &status, &l.SessionID, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("lesson: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning lesson: %w", err)
	}
	return r.populateLesson(&l, lessonDate, status, createdAtStr, updatedAtStr)
}

func (r *SQLiteLessonRepo) scanLessonRow(rows *sql.Rows) (*domain.Lesson, error) {
	var l domain.Lesson
	var lessonDate sql.NullString
	var status, createdAtStr, updatedAtStr string

	err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Subject, &lessonDate, &status, &l.SessionID, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning lesson row: %w", err)
	}
	return r.populateLesson(&l, lessonDate, status, createdAtStr, updatedAtStr)
}

func (r *SQLiteLessonRepo) populateLesson(l *domain.Lesson, lessonDate sql.NullString, status, createdAtStr, updatedAtStr string) (*domain.Lesson, error) {
	l.LessonDate = parseNullableTime(lessonDate, time.RFC3339)
	l.Status = domain.LessonStatus(status)

	var parseErr error
	l.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	l.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return l, nil
}
