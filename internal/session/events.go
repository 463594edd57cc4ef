package session

// Event is a learner interaction dispatched to the session controller.
// The set is closed; Dispatch switches exhaustively over it.
type Event interface {
	isEvent()
}

// SelectItem makes a content item the active one. Unknown or
// unpublished ids are ignored.
type SelectItem struct {
	ContentID string
}

// CompletionEvent reports a completion interaction for a content item.
// The resolved policy decides the effect: manual items toggle, items
// with renderer-driven or out-of-band completion are marked complete
// one-way.
type CompletionEvent struct {
	ContentID string
}

// SubmitCheckpoint submits an answer for a CHECKPOINT item. A
// successful evaluation completes the item regardless of correctness.
type SubmitCheckpoint struct {
	ContentID string
	Answer    string
}

// SaveNote persists the lesson note.
type SaveNote struct {
	Text string
}

// ClearNote deletes the lesson note. Confirmed must reflect an explicit
// user confirmation.
type ClearNote struct {
	Confirmed bool
}

func (SelectItem) isEvent()       {}
func (CompletionEvent) isEvent()  {}
func (SubmitCheckpoint) isEvent() {}
func (SaveNote) isEvent()         {}
func (ClearNote) isEvent()        {}
