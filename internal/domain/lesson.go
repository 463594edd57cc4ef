package domain

import "time"

// Lesson is a single teaching unit: an ordered list of content items,
// optionally linked to a live virtual-classroom session. Lessons are
// read-only for the duration of a viewing session.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Subject     string
	LessonDate  *time.Time
	Status      LessonStatus
	SessionID   string // live session reference, empty when none
	Content     []ContentItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PublishedContent returns the published content items sorted by
// SequenceOrder ascending. The sort is stable so items sharing a
// sequence value keep their original relative order.
func (l *Lesson) PublishedContent() []ContentItem {
	published := make([]ContentItem, 0, len(l.Content))
	for _, item := range l.Content {
		if item.IsPublished {
			published = append(published, item)
		}
	}
	sortContentBySequence(published)
	return published
}

// LiveSessionRef points at the virtual classroom joined to a lesson.
type LiveSessionRef struct {
	ID        string
	LessonID  string
	Provider  string
	JoinURL   string
	StartsAt  *time.Time
	CreatedAt time.Time
}
