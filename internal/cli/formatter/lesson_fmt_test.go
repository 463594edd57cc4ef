package formatter

import (
	"testing"
	"time"

	"github.com/darasahq/darasa/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatLessonList(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	lessons := []*domain.Lesson{
		{ID: "aaaaaaaa-1111", Title: "Optics", Subject: "Physics", Status: domain.LessonPublished, LessonDate: &date},
		{ID: "bbbbbbbb-2222", Title: "Waves", Subject: "Physics", Status: domain.LessonDraft},
	}

	out := FormatLessonList(lessons)

	assert.Contains(t, out, "Optics")
	assert.Contains(t, out, "Waves")
	assert.Contains(t, out, "2026-08-31")
	assert.Contains(t, out, "published")
	assert.Contains(t, out, "draft")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "aaaaaaaa-1111", "ids should be shortened")
}

func TestFormatLessonDetail(t *testing.T) {
	l := &domain.Lesson{
		ID:          "id-1",
		Title:       "Optics",
		Subject:     "Physics",
		Status:      domain.LessonPublished,
		Description: "Light and lenses",
		Content: []domain.ContentItem{
			{SequenceOrder: 1, ContentType: domain.ContentVideo, Title: "Refraction", IsPublished: true, EstimatedMinutes: 10},
			{SequenceOrder: 2, ContentType: domain.ContentText, Title: "Snell's law", IsPublished: false},
		},
	}

	out := FormatLessonDetail(l)

	assert.Contains(t, out, "OPTICS")
	assert.Contains(t, out, "Light and lenses")
	assert.Contains(t, out, "Refraction")
	assert.Contains(t, out, "VIDEO")
	assert.Contains(t, out, "10")
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-5, 10), "  0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
	assert.Contains(t, RenderProgress(50, 10), " 50%")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "LONGHEADER"}, [][]string{{"x", "y"}, {"longer", "z"}})

	assert.Contains(t, out, "LONGHEADER")
	assert.Contains(t, out, "longer")
}
