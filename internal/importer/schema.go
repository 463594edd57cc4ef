package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// LessonSchema is the top-level JSON structure for lesson import.
type LessonSchema struct {
	Lesson      LessonImport      `json:"lesson"`
	Content     []ContentImport   `json:"content"`
	LiveSession *LiveSessionImport `json:"live_session,omitempty"`
}

// LessonImport defines the lesson-level fields in the import file.
type LessonImport struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Subject     string  `json:"subject,omitempty"`
	LessonDate  *string `json:"lesson_date,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ContentImport defines one content item in the import file.
type ContentImport struct {
	Title            string          `json:"title"`
	Type             string          `json:"type"`
	Description      string          `json:"description,omitempty"`
	URL              string          `json:"url,omitempty"`
	Data             json.RawMessage `json:"data,omitempty"`
	Sequence         *int            `json:"sequence,omitempty"`
	EstimatedMinutes *int            `json:"estimated_minutes,omitempty"`
	Published        *bool           `json:"published,omitempty"`
}

// LiveSessionImport defines an optional virtual classroom link.
type LiveSessionImport struct {
	Provider string  `json:"provider,omitempty"`
	JoinURL  string  `json:"join_url"`
	StartsAt *string `json:"starts_at,omitempty"`
}

// LoadLessonFile reads and parses a lesson import file.
func LoadLessonFile(path string) (*LessonSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema LessonSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
