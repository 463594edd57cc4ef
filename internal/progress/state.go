// Package progress tracks per-lesson content completion and the derived
// progress metrics shown to learners.
package progress

import (
	"fmt"
	"sort"
)

// CompletionState is the set of content item ids a learner has marked or
// triggered as done for one lesson. Ids from a prior version of the
// lesson's content list are tolerated; derived metrics clamp so they can
// never show more than full completion.
type CompletionState map[string]struct{}

// NewCompletionState builds a state containing the given ids.
func NewCompletionState(ids ...string) CompletionState {
	state := make(CompletionState, len(ids))
	for _, id := range ids {
		state[id] = struct{}{}
	}
	return state
}

// Has reports whether the content item is marked complete.
func (s CompletionState) Has(contentID string) bool {
	_, ok := s[contentID]
	return ok
}

// Clone returns an independent copy of the state.
func (s CompletionState) Clone() CompletionState {
	clone := make(CompletionState, len(s))
	for id := range s {
		clone[id] = struct{}{}
	}
	return clone
}

// IDs returns the member ids sorted, so persisted payloads are stable
// across runs.
func (s CompletionState) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CompletionKey returns the persistence key for a lesson's completion
// set. The scheme is fixed for compatibility with previously persisted
// viewer state.
func CompletionKey(lessonID string) string {
	return fmt.Sprintf("lesson_%s_completed", lessonID)
}
