// Package notes stores the learner's free-text note for each lesson.
// Notes live beside completion state in the viewer-state store but have
// a fully independent lifecycle: lesson or content changes never touch
// them.
package notes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darasahq/darasa/internal/repository"
)

// ErrNotConfirmed indicates a destructive note operation was invoked
// without a confirmed intent signal.
var ErrNotConfirmed = errors.New("note clear requires confirmation")

// NoteKey returns the persistence key for a lesson's note. The scheme is
// fixed for compatibility with previously persisted viewer state.
func NoteKey(lessonID string) string {
	return fmt.Sprintf("lesson_note_%s", lessonID)
}

// Sidecar owns per-lesson notes. Not safe for concurrent use.
type Sidecar struct {
	kv  repository.KeyValueRepo
	now func() time.Time
}

// NewSidecar creates a Sidecar on the given key-value port.
func NewSidecar(kv repository.KeyValueRepo) *Sidecar {
	return &Sidecar{kv: kv, now: time.Now}
}

// Load returns the saved note, or the empty string when none exists.
func (s *Sidecar) Load(ctx context.Context, lessonID string) (string, error) {
	text, err := s.kv.Get(ctx, NoteKey(lessonID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return text, nil
}

// Save persists the note and returns the save time for the transient
// "saved at" acknowledgement. The caller clears the acknowledgement
// after a few seconds; the note itself stays.
func (s *Sidecar) Save(ctx context.Context, lessonID, text string) (time.Time, error) {
	if err := s.kv.Set(ctx, NoteKey(lessonID), text); err != nil {
		return time.Time{}, err
	}
	return s.now(), nil
}

// Clear deletes the note. The confirmed flag must come from an explicit
// user confirmation step; a bare call is rejected so a stray key press
// cannot silently destroy a note.
func (s *Sidecar) Clear(ctx context.Context, lessonID string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	return s.kv.Delete(ctx, NoteKey(lessonID))
}
