// Package session orchestrates one lesson-viewing session: it loads the
// lesson and its viewer-local state, holds the active-item selection,
// routes completion events through the resolved policy, and exposes a
// view model to the UI layer.
//
// The controller is an explicit state machine driven by Dispatch. It is
// single-goroutine by design: persistence completes before each
// dispatch returns, so an event always observes the state produced by
// the previous one.
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/darasahq/darasa/internal/checkpoint"
	"github.com/darasahq/darasa/internal/content"
	"github.com/darasahq/darasa/internal/domain"
	"github.com/darasahq/darasa/internal/notes"
	"github.com/darasahq/darasa/internal/progress"
	"github.com/darasahq/darasa/internal/repository"
)

// Controller runs one lesson-viewing session.
type Controller struct {
	lessonID string
	lessons  repository.LessonRepo
	live     repository.LiveSessionRepo
	store    *progress.Store
	notes    *notes.Sidecar
	logger   *slog.Logger

	status      Status
	lesson      *domain.Lesson
	items       []domain.ContentItem // published, sorted
	activeID    string
	state       progress.CompletionState
	note        string
	noteSavedAt *time.Time
	liveRef     *domain.LiveSessionRef
	results     map[string]checkpoint.Result
	closed      bool
}

// NewController creates a controller in the Loading state. A nil logger
// discards the ancillary-failure log lines.
func NewController(
	lessonID string,
	lessons repository.LessonRepo,
	live repository.LiveSessionRepo,
	store *progress.Store,
	sidecar *notes.Sidecar,
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		lessonID: lessonID,
		lessons:  lessons,
		live:     live,
		store:    store,
		notes:    sidecar,
		logger:   logger,
		status:   StatusLoading,
		state:    progress.CompletionState{},
		results:  make(map[string]checkpoint.Result),
	}
}

// Load fetches the lesson and restores viewer state. A failed primary
// fetch moves the session to the terminal NotFound state; failures
// loading completion state, the note, or the live-session reference are
// logged and swallowed so they never block viewing.
func (c *Controller) Load(ctx context.Context) ViewModel {
	if c.closed || c.status != StatusLoading {
		return c.ViewModel()
	}

	lesson, err := c.lessons.FetchLesson(ctx, c.lessonID)
	if err != nil {
		c.status = StatusNotFound
		if !errors.Is(err, repository.ErrNotFound) {
			c.logger.Error("lesson fetch failed", "lesson_id", c.lessonID, "error", err)
		}
		return c.ViewModel()
	}

	c.lesson = lesson
	c.items = lesson.PublishedContent()
	if len(c.items) > 0 {
		c.activeID = c.items[0].ID
	}

	// Viewer state is restored before the first progress snapshot is
	// computed, so a reload right after a toggle shows the toggle.
	state, err := c.store.Load(ctx, c.lessonID)
	if err != nil {
		c.logger.Warn("loading completion state failed", "lesson_id", c.lessonID, "error", err)
		state = progress.CompletionState{}
	}
	c.state = state

	note, err := c.notes.Load(ctx, c.lessonID)
	if err != nil {
		c.logger.Warn("loading note failed", "lesson_id", c.lessonID, "error", err)
		note = ""
	}
	c.note = note

	if lesson.SessionID != "" {
		ref, err := c.live.FetchForLesson(ctx, c.lessonID)
		if err != nil {
			// Best-effort: the classroom may simply not exist yet.
			if !errors.Is(err, repository.ErrNotFound) {
				c.logger.Warn("live session lookup failed", "lesson_id", c.lessonID, "error", err)
			}
		} else {
			c.liveRef = ref
		}
	}

	if c.closed {
		// Torn down while loading; do not surface a Ready state.
		return c.ViewModel()
	}
	c.status = StatusReady
	return c.ViewModel()
}

// Dispatch applies one event and returns the resulting view model.
// Events other than note operations are ignored unless the session is
// Ready.
func (c *Controller) Dispatch(ctx context.Context, ev Event) ViewModel {
	if c.closed {
		return c.ViewModel()
	}

	switch ev := ev.(type) {
	case SelectItem:
		c.selectItem(ev.ContentID)
	case CompletionEvent:
		c.applyCompletion(ctx, ev.ContentID)
	case SubmitCheckpoint:
		c.submitCheckpoint(ctx, ev)
	case SaveNote:
		c.saveNote(ctx, ev.Text)
	case ClearNote:
		c.clearNote(ctx, ev.Confirmed)
	}
	return c.ViewModel()
}

// Close tears the session down. Later dispatches and load completions
// become no-ops, so an async continuation can never mutate a dead
// session.
func (c *Controller) Close() {
	c.closed = true
}

func (c *Controller) selectItem(contentID string) {
	if c.status != StatusReady {
		return
	}
	if c.findItem(contentID) == nil {
		return
	}
	c.activeID = contentID
}

// applyCompletion routes a completion interaction through the item's
// resolved policy: manual items toggle, everything else marks complete
// one-way. Persistence failures are logged and the in-memory set keeps
// the learner's action for the rest of the session.
func (c *Controller) applyCompletion(ctx context.Context, contentID string) {
	if c.status != StatusReady {
		return
	}
	item := c.findItem(contentID)
	if item == nil {
		return
	}

	spec := content.Resolve(item.ContentType)

	var state progress.CompletionState
	var err error
	if spec.Policy == content.PolicyManual {
		state, err = c.store.Toggle(ctx, c.lessonID, contentID)
	} else {
		state, err = c.store.MarkComplete(ctx, c.lessonID, contentID)
	}
	if err != nil {
		c.logger.Warn("persisting completion failed", "lesson_id", c.lessonID, "content_id", contentID, "error", err)
	}
	c.state = state
}

func (c *Controller) submitCheckpoint(ctx context.Context, ev SubmitCheckpoint) {
	if c.status != StatusReady {
		return
	}
	item := c.findItem(ev.ContentID)
	if item == nil || item.ContentType != domain.ContentCheckpoint {
		return
	}

	def, err := domain.DecodeCheckpoint(item.ContentData)
	if err != nil {
		c.logger.Error("invalid checkpoint definition", "content_id", ev.ContentID, "error", err)
		return
	}

	result, err := checkpoint.Evaluate(def, ev.Answer)
	if err != nil {
		// Empty answers are rejected at the input boundary; reaching
		// here means the UI let one through. Ignore it.
		return
	}

	c.results[ev.ContentID] = result
	state, err := c.store.MarkComplete(ctx, c.lessonID, ev.ContentID)
	if err != nil {
		c.logger.Warn("persisting checkpoint completion failed", "content_id", ev.ContentID, "error", err)
	}
	c.state = state
}

func (c *Controller) saveNote(ctx context.Context, text string) {
	savedAt, err := c.notes.Save(ctx, c.lessonID, text)
	if err != nil {
		c.logger.Warn("saving note failed", "lesson_id", c.lessonID, "error", err)
		return
	}
	c.note = text
	c.noteSavedAt = &savedAt
}

func (c *Controller) clearNote(ctx context.Context, confirmed bool) {
	if err := c.notes.Clear(ctx, c.lessonID, confirmed); err != nil {
		if !errors.Is(err, notes.ErrNotConfirmed) {
			c.logger.Warn("clearing note failed", "lesson_id", c.lessonID, "error", err)
		}
		return
	}
	c.note = ""
	c.noteSavedAt = nil
}

// ClearNoteAck drops the transient "saved at" acknowledgement.
func (c *Controller) ClearNoteAck() {
	c.noteSavedAt = nil
}

func (c *Controller) findItem(contentID string) *domain.ContentItem {
	for i := range c.items {
		if c.items[i].ID == contentID {
			return &c.items[i]
		}
	}
	return nil
}

// ViewModel assembles the current render state.
func (c *Controller) ViewModel() ViewModel {
	vm := ViewModel{
		Status:            c.status,
		LessonID:          c.lessonID,
		ActiveID:          c.activeID,
		Note:              c.note,
		NoteSavedAt:       c.noteSavedAt,
		LiveSession:       c.liveRef,
		CheckpointResults: c.results,
	}
	if c.lesson != nil {
		vm.Title = c.lesson.Title
		vm.Subject = c.lesson.Subject
		vm.Description = c.lesson.Description
	}

	vm.Items = make([]ItemView, 0, len(c.items))
	for _, item := range c.items {
		spec := content.Resolve(item.ContentType)
		vm.Items = append(vm.Items, ItemView{
			ID:               item.ID,
			Title:            item.Title,
			Description:      item.Description,
			URL:              item.URL,
			ContentType:      item.ContentType,
			Renderer:         spec.Renderer,
			Policy:           spec.Policy,
			EstimatedMinutes: item.EstimatedMinutes,
			Completed:        c.state.Has(item.ID),
		})
	}

	vm.Progress = progress.ComputeSnapshot(c.items, c.state)
	return vm
}
