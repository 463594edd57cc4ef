package service

import (
	"context"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/importer"
)

type LessonService interface {
	Create(ctx context.Context, l *domain.Lesson) error
	GetByID(ctx context.Context, id string) (*domain.Lesson, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Lesson, error)
	Update(ctx context.Context, l *domain.Lesson) error
	Publish(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	AddContent(ctx context.Context, item *domain.ContentItem) error
	UpdateContent(ctx context.Context, item *domain.ContentItem) error
	SetContentPublished(ctx context.Context, contentID string, published bool) error
	ReorderContent(ctx context.Context, lessonID string, orderedIDs []string) error
	DeleteContent(ctx context.Context, contentID string) error
}

// ImportResult holds the outcome of a lesson import.
type ImportResult struct {
	Lesson       *domain.Lesson
	ContentCount int
	HasLive      bool
}

type ImportService interface {
	ImportLesson(ctx context.Context, filePath string) (*ImportResult, error)
	ImportLessonFromSchema(ctx context.Context, schema *importer.LessonSchema) (*ImportResult, error)
}
