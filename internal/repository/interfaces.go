package repository

import (
	"context"

	"github.com/darasahq/darasa/internal/domain"
)

// LessonRepo reads and writes the lesson catalogue. FetchLesson returns
// the lesson with its full content list in a single read.
type LessonRepo interface {
	Create(ctx context.Context, l *domain.Lesson) error
	FetchLesson(ctx context.Context, id string) (*domain.Lesson, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Lesson, error)
	Update(ctx context.Context, l *domain.Lesson) error
	Delete(ctx context.Context, id string) error
}

// ContentRepo manages individual content items within a lesson.
type ContentRepo interface {
	Create(ctx context.Context, item *domain.ContentItem) error
	GetByID(ctx context.Context, id string) (*domain.ContentItem, error)
	ListByLesson(ctx context.Context, lessonID string) ([]domain.ContentItem, error)
	Update(ctx context.Context, item *domain.ContentItem) error
	SetPublished(ctx context.Context, id string, published bool) error
	Delete(ctx context.Context, id string) error
}

// LiveSessionRepo looks up the virtual classroom attached to a lesson.
// Lookups are best-effort for viewers: absence and failure both leave
// the lesson fully usable.
type LiveSessionRepo interface {
	Create(ctx context.Context, ref *domain.LiveSessionRef) error
	FetchForLesson(ctx context.Context, lessonID string) (*domain.LiveSessionRef, error)
}

// KeyValueRepo is the persistence port for viewer-local state
// (completion sets, lesson notes). Get returns ErrNotFound when the key
// has never been written. Set must be durable before it returns.
type KeyValueRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
