package genai

import (
	"context"
	"fmt"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/importer"
)

const lessonDraftSystemPrompt = `You are a lesson planning assistant for teachers.
Given a description of a lesson, produce a JSON object with this shape:
{
  "lesson": {"title": "...", "subject": "...", "description": "...", "status": "draft"},
  "content": [
    {"title": "...", "type": "TEXT|VIDEO|QUIZ|CHECKPOINT|FLASHCARD|SUMMARY", "description": "..."}
  ]
}
CHECKPOINT items must carry a "data" object:
{"type": "QUIZ", "question": "...", "options": ["...", "..."], "correctAnswer": "..."}
or {"type": "REFLECTION", "question": "..."}.
Output ONLY the JSON object. No prose, no markdown fences.`

const quizDraftSystemPrompt = `You write multiple-choice comprehension checks.
Given a topic, produce a JSON object:
{"type": "QUIZ", "question": "...", "options": ["...", "...", "..."], "correctAnswer": "..."}
The correctAnswer must be one of the options verbatim.
Output ONLY the JSON object. No prose, no markdown fences.`

// DraftService turns natural-language descriptions into importable
// lesson schemas and checkpoint definitions. Drafts are suggestions;
// nothing is persisted until the caller imports the result.
type DraftService interface {
	DraftLesson(ctx context.Context, description string) (*importer.LessonSchema, error)
	DraftQuiz(ctx context.Context, topic string) (*domain.CheckpointDefinition, error)
}

type draftService struct {
	client Client
}

// NewDraftService creates a DraftService backed by a model client.
func NewDraftService(client Client) DraftService {
	return &draftService{client: client}
}

func (s *draftService) DraftLesson(ctx context.Context, description string) (*importer.LessonSchema, error) {
	resp, err := s.client.Generate(ctx, GenerateRequest{
		Task:         TaskLessonDraft,
		SystemPrompt: lessonDraftSystemPrompt,
		UserPrompt:   description,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson draft failed: %w", err)
	}

	schema, err := ExtractJSON[importer.LessonSchema](resp.Text, validateLessonDraft)
	if err != nil {
		return nil, fmt.Errorf("extracting lesson draft: %w", err)
	}
	return &schema, nil
}

func (s *draftService) DraftQuiz(ctx context.Context, topic string) (*domain.CheckpointDefinition, error) {
	resp, err := s.client.Generate(ctx, GenerateRequest{
		Task:         TaskQuizDraft,
		SystemPrompt: quizDraftSystemPrompt,
		UserPrompt:   topic,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz draft failed: %w", err)
	}

	def, err := ExtractJSON[domain.CheckpointDefinition](resp.Text, func(d domain.CheckpointDefinition) error {
		return d.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("extracting quiz draft: %w", err)
	}
	return &def, nil
}

func validateLessonDraft(schema importer.LessonSchema) error {
	if errs := importer.ValidateLessonSchema(&schema); len(errs) > 0 {
		return errs[0]
	}
	return nil
}
