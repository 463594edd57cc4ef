package service

import (
	"context"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/repository"
	"github.com/google/uuid"
)

type lessonService struct {
	lessons repository.LessonRepo
	content repository.ContentRepo
	uow     db.UnitOfWork
}

func NewLessonService(
	lessons repository.LessonRepo,
	content repository.ContentRepo,
	uow db.UnitOfWork,
) LessonService {
	return &lessonService{lessons: lessons, content: content, uow: uow}
}

func (s *lessonService) Create(ctx context.Context, l *domain.Lesson) error {
	if l.Title == "" {
		return fmt.Errorf("lesson title is required")
	}
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.Status == "" {
		l.Status = domain.LessonDraft
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	return s.lessons.Create(ctx, l)
}

func (s *lessonService) GetByID(ctx context.Context, id string) (*domain.Lesson, error) {
	return s.lessons.FetchLesson(ctx, id)
}

func (s *lessonService) List(ctx context.Context, includeArchived bool) ([]*domain.Lesson, error) {
	return s.lessons.List(ctx, includeArchived)
}

func (s *lessonService) Update(ctx context.Context, l *domain.Lesson) error {
	l.UpdatedAt = time.Now().UTC()
	return s.lessons.Update(ctx, l)
}

func (s *lessonService) Publish(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.LessonPublished)
}

func (s *lessonService) Archive(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, domain.LessonArchived)
}

func (s *lessonService) setStatus(ctx context.Context, id string, status domain.LessonStatus) error {
	l, err := s.lessons.FetchLesson(ctx, id)
	if err != nil {
		return err
	}
	l.Status = status
	l.UpdatedAt = time.Now().UTC()
	return s.lessons.Update(ctx, l)
}

func (s *lessonService) Delete(ctx context.Context, id string) error {
	return s.lessons.Delete(ctx, id)
}

func (s *lessonService) AddContent(ctx context.Context, item *domain.ContentItem) error {
	if item.LessonID == "" {
		return fmt.Errorf("content item requires a lesson id")
	}
	if item.Title == "" {
		return fmt.Errorf("content item title is required")
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.SequenceOrder == 0 {
		existing, err := s.content.ListByLesson(ctx, item.LessonID)
		if err != nil {
			return fmt.Errorf("determining sequence: %w", err)
		}
		item.SequenceOrder = len(existing) + 1
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.content.Create(ctx, item)
}

func (s *lessonService) UpdateContent(ctx context.Context, item *domain.ContentItem) error {
	item.UpdatedAt = time.Now().UTC()
	return s.content.Update(ctx, item)
}

func (s *lessonService) SetContentPublished(ctx context.Context, contentID string, published bool) error {
	return s.content.SetPublished(ctx, contentID, published)
}

// ReorderContent rewrites sequence numbers so orderedIDs become positions
// 1..n. Items omitted from orderedIDs keep their relative order after the
// named ones. The whole reorder commits or none of it does.
func (s *lessonService) ReorderContent(ctx context.Context, lessonID string, orderedIDs []string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txContent := repository.NewSQLiteContentRepo(tx)

		items, err := txContent.ListByLesson(ctx, lessonID)
		if err != nil {
			return err
		}

		byID := make(map[string]*domain.ContentItem, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		seq := 0
		now := time.Now().UTC()
		for _, id := range orderedIDs {
			item, ok := byID[id]
			if !ok {
				return fmt.Errorf("content %q does not belong to lesson %q", id, lessonID)
			}
			seq++
			item.SequenceOrder = seq
			item.UpdatedAt = now
			if err := txContent.Update(ctx, item); err != nil {
				return err
			}
			delete(byID, id)
		}

		// Remaining items trail the explicit order, preserving their
		// current relative positions (items is already sequence-sorted).
		for i := range items {
			item, ok := byID[items[i].ID]
			if !ok {
				continue
			}
			seq++
			item.SequenceOrder = seq
			item.UpdatedAt = now
			if err := txContent.Update(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *lessonService) DeleteContent(ctx context.Context, contentID string) error {
	return s.content.Delete(ctx, contentID)
}
