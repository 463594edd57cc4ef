package service

import (
	"context"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/db"
	"github.com/darasahq/darasa/internal/importer"
	"github.com/darasahq/darasa/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: combineUseCaseObservers(observers)}
}

func (s *importService) ImportLesson(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadLessonFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading lesson file: %w", err)
	}
	return s.ImportLessonFromSchema(ctx, schema)
}

// ImportLessonFromSchema writes the lesson, its content, and any live
// session reference in a single transaction. A failure on any row rolls
// back the whole lesson so the catalogue never holds a partial import.
func (s *importService) ImportLessonFromSchema(ctx context.Context, schema *importer.LessonSchema) (*ImportResult, error) {
	started := time.Now()

	if errs := importer.ValidateLessonSchema(schema); len(errs) > 0 {
		err := formatValidationErrors(errs)
		s.observe(ctx, started, nil, err)
		return nil, err
	}

	generated, err := importer.ConvertLessonSchema(schema)
	if err != nil {
		s.observe(ctx, started, nil, err)
		return nil, fmt.Errorf("converting lesson schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLessons := repository.NewSQLiteLessonRepo(tx)
		txContent := repository.NewSQLiteContentRepo(tx)
		txLive := repository.NewSQLiteLiveSessionRepo(tx)

		if err := txLessons.Create(ctx, generated.Lesson); err != nil {
			return fmt.Errorf("creating lesson: %w", err)
		}
		for i := range generated.Content {
			item := &generated.Content[i]
			if err := txContent.Create(ctx, item); err != nil {
				return fmt.Errorf("creating content item %q: %w", item.Title, err)
			}
		}
		if generated.LiveSession != nil {
			if err := txLive.Create(ctx, generated.LiveSession); err != nil {
				return fmt.Errorf("creating live session: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.observe(ctx, started, nil, err)
		return nil, err
	}

	result := &ImportResult{
		Lesson:       generated.Lesson,
		ContentCount: len(generated.Content),
		HasLive:      generated.LiveSession != nil,
	}
	s.observe(ctx, started, result, nil)
	return result, nil
}

func (s *importService) observe(ctx context.Context, started time.Time, result *ImportResult, err error) {
	event := UseCaseEvent{
		Name:      "lesson_import",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if result != nil {
		event.Fields = map[string]any{
			"lesson_id":     result.Lesson.ID,
			"content_count": result.ContentCount,
			"has_live":      result.HasLive,
		}
	}
	s.observer.ObserveUseCase(ctx, event)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
