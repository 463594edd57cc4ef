package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/domain"
)

// SQLiteContentRepo implements ContentRepo against the local catalogue.
type SQLiteContentRepo struct {
	db db.DBTX
}

// NewSQLiteContentRepo creates a new SQLiteContentRepo.
func NewSQLiteContentRepo(conn db.DBTX) *SQLiteContentRepo {
	return &SQLiteContentRepo{db: conn}
}

const contentColumns = `id, lesson_id, content_type, title, description, url,
	content_data, sequence_order, estimated_minutes, is_published, created_at, updated_at`

func (r *SQLiteContentRepo) Create(ctx context.Context, item *domain.ContentItem) error {
	query := `INSERT INTO lesson_content (` + contentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.LessonID,
		string(item.ContentType),
		item.Title,
		item.Description,
		item.URL,
		rawToValue(item.ContentData),
		item.SequenceOrder,
		item.EstimatedMinutes,
		boolToInt(item.IsPublished),
		item.CreatedAt.Format(time.RFC3339),
		item.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting content item: %w", err)
	}
	return nil
}

func (r *SQLiteContentRepo) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM lesson_content WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	item, err := scanContentItem(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("content item: %w", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// ListByLesson returns all content for a lesson, published or not,
// ordered by sequence_order with insertion order breaking ties.
func (r *SQLiteContentRepo) ListByLesson(ctx context.Context, lessonID string) ([]domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM lesson_content
		WHERE lesson_id = ? ORDER BY sequence_order, rowid`
	rows, err := r.db.QueryContext(ctx, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("listing lesson content: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lesson content: %w", err)
	}
	return items, nil
}

func (r *SQLiteContentRepo) Update(ctx context.Context, item *domain.ContentItem) error {
	query := `UPDATE lesson_content SET content_type = ?, title = ?, description = ?, url = ?,
		content_data = ?, sequence_order = ?, estimated_minutes = ?, is_published = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(item.ContentType),
		item.Title,
		item.Description,
		item.URL,
		rawToValue(item.ContentData),
		item.SequenceOrder,
		item.EstimatedMinutes,
		boolToInt(item.IsPublished),
		time.Now().UTC().Format(time.RFC3339),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating content item: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("content item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteContentRepo) SetPublished(ctx context.Context, id string, published bool) error {
	query := `UPDATE lesson_content SET is_published = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(published),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("setting content published flag: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("content item %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteContentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lesson_content WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting content item: %w", err)
	}
	return nil
}

// scanContentItem scans one content row via the given Scan function,
// shared between Row and Rows.
func scanContentItem(scan func(dest ...any) error) (*domain.ContentItem, error) {
	var item domain.ContentItem
	var contentType, createdAtStr, updatedAtStr string
	var contentData sql.NullString
	var isPublished int

	err := scan(
		&item.ID, &item.LessonID, &contentType, &item.Title, &item.Description, &item.URL,
		&contentData, &item.SequenceOrder, &item.EstimatedMinutes, &isPublished,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning content item: %w", err)
	}

	item.ContentType = domain.ContentType(contentType)
	item.IsPublished = intToBool(isPublished)
	if contentData.Valid && contentData.String != "" {
		item.ContentData = json.RawMessage(contentData.String)
	}

	var parseErr error
	item.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	item.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &item, nil
}

// rawToValue converts a raw JSON payload to a SQLite value, storing NULL
// for empty payloads.
func rawToValue(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
