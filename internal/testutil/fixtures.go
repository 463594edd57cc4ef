package testutil

import (
	"encoding/json"
	"time"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/google/uuid"
)

// Lesson options
type LessonOption func(*domain.Lesson)

func WithLessonStatus(s domain.LessonStatus) LessonOption {
	return func(l *domain.Lesson) {
		l.Status = s
	}
}

func WithSessionID(id string) LessonOption {
	return func(l *domain.Lesson) {
		l.SessionID = id
	}
}

func WithLessonDate(d time.Time) LessonOption {
	return func(l *domain.Lesson) {
		l.LessonDate = &d
	}
}

// NewTestLesson builds a published lesson with no content.
func NewTestLesson(title string, opts ...LessonOption) *domain.Lesson {
	now := time.Now().UTC()
	l := &domain.Lesson{
		ID:        uuid.New().String(),
		Title:     title,
		Subject:   "test",
		Status:    domain.LessonPublished,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ContentItem options
type ContentOption func(*domain.ContentItem)

func WithSequence(order int) ContentOption {
	return func(c *domain.ContentItem) {
		c.SequenceOrder = order
	}
}

func Unpublished() ContentOption {
	return func(c *domain.ContentItem) {
		c.IsPublished = false
	}
}

func WithURL(url string) ContentOption {
	return func(c *domain.ContentItem) {
		c.URL = url
	}
}

func WithContentData(data json.RawMessage) ContentOption {
	return func(c *domain.ContentItem) {
		c.ContentData = data
	}
}

// NewTestContentItem builds a published content item for the lesson.
func NewTestContentItem(lessonID string, ct domain.ContentType, title string, opts ...ContentOption) *domain.ContentItem {
	now := time.Now().UTC()
	item := &domain.ContentItem{
		ID:          uuid.New().String(),
		LessonID:    lessonID,
		ContentType: ct,
		Title:       title,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

// QuizCheckpointData returns a ContentData payload for a two-option quiz
// checkpoint with the first option correct.
func QuizCheckpointData(question string, correct, wrong string) json.RawMessage {
	def := domain.CheckpointDefinition{
		Kind:          domain.CheckpointQuiz,
		Question:      question,
		Options:       []string{correct, wrong},
		CorrectAnswer: correct,
	}
	data, _ := json.Marshal(def)
	return data
}

// ReflectionCheckpointData returns a ContentData payload for an
// open-ended checkpoint.
func ReflectionCheckpointData(question string) json.RawMessage {
	def := domain.CheckpointDefinition{
		Kind:     domain.CheckpointReflection,
		Question: question,
	}
	data, _ := json.Marshal(def)
	return data
}
