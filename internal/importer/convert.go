package importer

import (
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/google/uuid"
)

// ConvertResult holds the domain objects produced from a valid schema.
type ConvertResult struct {
	Lesson      *domain.Lesson
	Content     []domain.ContentItem
	LiveSession *domain.LiveSessionRef
}

// ConvertLessonSchema turns a validated schema into domain objects with
// fresh ids. Missing sequence values default to the item's position so
// file order is display order.
func ConvertLessonSchema(schema *LessonSchema) (*ConvertResult, error) {
	if errs := ValidateLessonSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid lesson schema: %v", errs[0])
	}

	now := time.Now().UTC()
	lesson := &domain.Lesson{
		ID:          uuid.New().String(),
		Title:       schema.Lesson.Title,
		Description: schema.Lesson.Description,
		Subject:     schema.Lesson.Subject,
		Status:      domain.LessonStatus(domain.CoalesceStr(schema.Lesson.Status, string(domain.LessonDraft))),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if schema.Lesson.LessonDate != nil {
		d, err := time.Parse("2006-01-02", *schema.Lesson.LessonDate)
		if err != nil {
			return nil, fmt.Errorf("parsing lesson_date: %w", err)
		}
		lesson.LessonDate = &d
	}

	items := make([]domain.ContentItem, 0, len(schema.Content))
	for i, c := range schema.Content {
		seq := i + 1
		items = append(items, domain.ContentItem{
			ID:               uuid.New().String(),
			LessonID:         lesson.ID,
			ContentType:      domain.ContentType(c.Type),
			Title:            c.Title,
			Description:      c.Description,
			URL:              c.URL,
			ContentData:      c.Data,
			SequenceOrder:    domain.IntFromPtrWithDefault(seq, c.Sequence),
			EstimatedMinutes: domain.IntFromPtrWithDefault(0, c.EstimatedMinutes),
			IsPublished:      domain.BoolFromPtrWithDefault(true, c.Published),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	result := &ConvertResult{Lesson: lesson, Content: items}

	if schema.LiveSession != nil {
		ref := &domain.LiveSessionRef{
			ID:        uuid.New().String(),
			LessonID:  lesson.ID,
			Provider:  schema.LiveSession.Provider,
			JoinURL:   schema.LiveSession.JoinURL,
			CreatedAt: now,
		}
		if schema.LiveSession.StartsAt != nil {
			t, err := time.Parse(time.RFC3339, *schema.LiveSession.StartsAt)
			if err != nil {
				return nil, fmt.Errorf("parsing live_session.starts_at: %w", err)
			}
			ref.StartsAt = &t
		}
		lesson.SessionID = ref.ID
		result.LiveSession = ref
	}

	return result, nil
}
