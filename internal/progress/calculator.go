package progress

import (
	"math"

	"github.com/darasahq/darasa/internal/domain"
)

// Reward constants for the lesson progress display.
const (
	XPPerItem         = 50
	XPCompletionBonus = 500
)

// Snapshot is the derived progress view for one lesson. It is never
// persisted; it is recomputed from the completion set and the lesson
// content on every change.
type Snapshot struct {
	Percent   int
	XP        int
	Completed int // published items currently marked complete
	Published int
}

// PercentComplete returns the rounded completion percentage over the
// published content items. Zero published items yields 0, and stale ids
// in the set can never push the figure past 100.
func PercentComplete(items []domain.ContentItem, state CompletionState) int {
	published := countPublished(items)
	if published == 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(len(state)) / float64(published)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// XP returns the reward points for the current completion set: a linear
// per-item component plus a bonus at full completion. The bonus is a
// pure function of the current percentage, so un-completing an item
// after reaching 100% retracts it. That is intentional behavior, not a
// bug to fix.
func XP(state CompletionState, percent int) int {
	xp := XPPerItem * len(state)
	if percent == 100 {
		xp += XPCompletionBonus
	}
	return xp
}

// ComputeSnapshot derives the full progress view in one pass.
func ComputeSnapshot(items []domain.ContentItem, state CompletionState) Snapshot {
	percent := PercentComplete(items, state)

	completed := 0
	for _, item := range items {
		if item.IsPublished && state.Has(item.ID) {
			completed++
		}
	}

	return Snapshot{
		Percent:   percent,
		XP:        XP(state, percent),
		Completed: completed,
		Published: countPublished(items),
	}
}

func countPublished(items []domain.ContentItem) int {
	n := 0
	for _, item := range items {
		if item.IsPublished {
			n++
		}
	}
	return n
}
