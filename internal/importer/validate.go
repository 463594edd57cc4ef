package importer

import (
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/domain"
)

var validLessonStatuses = map[string]bool{"": true, "draft": true, "published": true, "archived": true}

// ValidateLessonSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateLessonSchema(schema *LessonSchema) []error {
	var errs []error

	errs = append(errs, validateLesson(&schema.Lesson)...)

	if len(schema.Content) == 0 {
		errs = append(errs, fmt.Errorf("content: at least one item is required"))
	}
	for i := range schema.Content {
		errs = append(errs, validateContent(i, &schema.Content[i])...)
	}

	if schema.LiveSession != nil {
		errs = append(errs, validateLiveSession(schema.LiveSession)...)
	}

	return errs
}

func validateLesson(l *LessonImport) []error {
	var errs []error

	if l.Title == "" {
		errs = append(errs, fmt.Errorf("lesson.title is required"))
	}
	if !validLessonStatuses[l.Status] {
		errs = append(errs, fmt.Errorf("lesson.status: unknown status %q", l.Status))
	}
	if l.LessonDate != nil {
		if _, err := time.Parse("2006-01-02", *l.LessonDate); err != nil {
			errs = append(errs, fmt.Errorf("lesson.lesson_date: invalid date format %q (expected YYYY-MM-DD)", *l.LessonDate))
		}
	}

	return errs
}

func validateContent(i int, c *ContentImport) []error {
	var errs []error

	if c.Title == "" {
		errs = append(errs, fmt.Errorf("content[%d].title is required", i))
	}
	if c.Type == "" {
		errs = append(errs, fmt.Errorf("content[%d].type is required", i))
	} else if !domain.ValidContentTypes[c.Type] {
		errs = append(errs, fmt.Errorf("content[%d].type: unknown content type %q", i, c.Type))
	}
	if c.EstimatedMinutes != nil && *c.EstimatedMinutes < 0 {
		errs = append(errs, fmt.Errorf("content[%d].estimated_minutes must not be negative", i))
	}

	// Checkpoints must carry a valid definition up front; there is no
	// placeholder to fall back to at render time.
	if c.Type == string(domain.ContentCheckpoint) {
		if _, err := domain.DecodeCheckpoint(c.Data); err != nil {
			errs = append(errs, fmt.Errorf("content[%d].data: %v", i, err))
		}
	}

	return errs
}

func validateLiveSession(s *LiveSessionImport) []error {
	var errs []error

	if s.JoinURL == "" {
		errs = append(errs, fmt.Errorf("live_session.join_url is required"))
	}
	if s.StartsAt != nil {
		if _, err := time.Parse(time.RFC3339, *s.StartsAt); err != nil {
			errs = append(errs, fmt.Errorf("live_session.starts_at: invalid timestamp %q (expected RFC3339)", *s.StartsAt))
		}
	}

	return errs
}
