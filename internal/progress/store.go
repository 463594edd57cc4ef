package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/darasahq/darasa/internal/repository"
)

// Store owns the persisted completion set for each lesson. It is a thin
// layer over the key-value port: every mutation persists before it
// returns, so a reload immediately after a toggle observes the new set.
// Not safe for concurrent use; a lesson session drives it from a single
// goroutine.
type Store struct {
	kv repository.KeyValueRepo
}

// NewStore creates a Store on the given key-value port.
func NewStore(kv repository.KeyValueRepo) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted completion set for a lesson. A key that was
// never written loads as the empty set. So does a corrupt payload:
// viewer state is best-effort, and wiping progress is preferable to
// failing the lesson view.
func (s *Store) Load(ctx context.Context, lessonID string) (CompletionState, error) {
	raw, err := s.kv.Get(ctx, CompletionKey(lessonID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return CompletionState{}, nil
		}
		return CompletionState{}, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Corrupt payload: treated as empty, not an error.
		return CompletionState{}, nil
	}
	return NewCompletionState(ids...), nil
}

// Toggle flips membership of the content item and persists the new set
// before returning it.
func (s *Store) Toggle(ctx context.Context, lessonID, contentID string) (CompletionState, error) {
	state, err := s.Load(ctx, lessonID)
	if err != nil {
		return state, err
	}

	if state.Has(contentID) {
		delete(state, contentID)
	} else {
		state[contentID] = struct{}{}
	}

	if err := s.persist(ctx, lessonID, state); err != nil {
		return state, err
	}
	return state, nil
}

// MarkComplete adds the content item to the set, persisting only when
// the set actually changed. Used by renderer-driven completion, which
// must never un-complete an item.
func (s *Store) MarkComplete(ctx context.Context, lessonID, contentID string) (CompletionState, error) {
	state, err := s.Load(ctx, lessonID)
	if err != nil {
		return state, err
	}

	if state.Has(contentID) {
		return state, nil
	}
	state[contentID] = struct{}{}

	if err := s.persist(ctx, lessonID, state); err != nil {
		return state, err
	}
	return state, nil
}

// IsComplete reports membership without touching persistence.
func (s *Store) IsComplete(state CompletionState, contentID string) bool {
	return state.Has(contentID)
}

func (s *Store) persist(ctx context.Context, lessonID string, state CompletionState) error {
	payload, err := json.Marshal(state.IDs())
	if err != nil {
		return fmt.Errorf("encoding completion set: %w", err)
	}
	return s.kv.Set(ctx, CompletionKey(lessonID), string(payload))
}
