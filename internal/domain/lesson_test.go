package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishedContent_FiltersUnpublished(t *testing.T) {
	lesson := &Lesson{
		Content: []ContentItem{
			{ID: "c1", SequenceOrder: 1, IsPublished: true},
			{ID: "c2", SequenceOrder: 2, IsPublished: false},
			{ID: "c3", SequenceOrder: 3, IsPublished: true},
		},
	}

	published := lesson.PublishedContent()
	assert.Len(t, published, 2)
	assert.Equal(t, "c1", published[0].ID)
	assert.Equal(t, "c3", published[1].ID)
}

func TestPublishedContent_SortsBySequenceOrder(t *testing.T) {
	lesson := &Lesson{
		Content: []ContentItem{
			{ID: "c3", SequenceOrder: 30, IsPublished: true},
			{ID: "c1", SequenceOrder: 10, IsPublished: true},
			{ID: "c2", SequenceOrder: 20, IsPublished: true},
		},
	}

	published := lesson.PublishedContent()
	assert.Equal(t, []string{"c1", "c2", "c3"},
		[]string{published[0].ID, published[1].ID, published[2].ID})
}

func TestPublishedContent_StableOnTies(t *testing.T) {
	lesson := &Lesson{
		Content: []ContentItem{
			{ID: "first", SequenceOrder: 5, IsPublished: true},
			{ID: "second", SequenceOrder: 5, IsPublished: true},
			{ID: "third", SequenceOrder: 5, IsPublished: true},
		},
	}

	published := lesson.PublishedContent()
	assert.Equal(t, "first", published[0].ID)
	assert.Equal(t, "second", published[1].ID)
	assert.Equal(t, "third", published[2].ID)
}

func TestPublishedContent_DoesNotMutateLesson(t *testing.T) {
	lesson := &Lesson{
		Content: []ContentItem{
			{ID: "c2", SequenceOrder: 2, IsPublished: true},
			{ID: "c1", SequenceOrder: 1, IsPublished: true},
		},
	}

	_ = lesson.PublishedContent()
	assert.Equal(t, "c2", lesson.Content[0].ID, "original slice order should be untouched")
}
