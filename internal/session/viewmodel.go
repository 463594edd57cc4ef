package session

import (
	"time"

	"github.com/darasahq/darasa/internal/checkpoint"
	"github.com/darasahq/darasa/internal/content"
	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/progress"
)

// Status is the lifecycle state of a lesson-viewing session.
type Status string

const (
	// StatusLoading is the initial state before Load completes.
	StatusLoading Status = "loading"
	// StatusReady means the lesson is viewable. A lesson with zero
	// published content is still Ready, not an error.
	StatusReady Status = "ready"
	// StatusNotFound is terminal: the primary lesson fetch failed or
	// returned nothing.
	StatusNotFound Status = "not_found"
)

// ItemView is the per-item slice of the view model.
type ItemView struct {
	ID               string
	Title            string
	Description      string
	URL              string
	ContentType      domain.ContentType
	Renderer         content.RendererKind
	Policy           content.CompletionPolicy
	EstimatedMinutes int
	Completed        bool
}

// ViewModel is the full render state for a lesson session. It is a
// value snapshot: the UI layer reads it, never mutates controller state
// through it.
type ViewModel struct {
	Status      Status
	LessonID    string
	Title       string
	Subject     string
	Description string

	Items    []ItemView
	ActiveID string
	Progress progress.Snapshot

	Note        string
	NoteSavedAt *time.Time

	LiveSession *domain.LiveSessionRef

	// CheckpointResults holds the verdicts of submitted checkpoints,
	// keyed by content id, for feedback display.
	CheckpointResults map[string]checkpoint.Result
}

// ActiveItem returns the currently selected item view, or nil.
func (vm *ViewModel) ActiveItem() *ItemView {
	for i := range vm.Items {
		if vm.Items[i].ID == vm.ActiveID {
			return &vm.Items[i]
		}
	}
	return nil
}
