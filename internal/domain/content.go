package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// ContentItem is one unit of lesson content: a video, a text section, an
// interactive asset, a checkpoint prompt. ContentData carries the
// renderer-specific payload (flashcard deck, book pages, quiz
// questions), opaque to everything except the matching decoder.
type ContentItem struct {
	ID               string
	LessonID         string
	ContentType      ContentType
	Title            string
	Description      string
	URL              string
	ContentData      json.RawMessage
	SequenceOrder    int
	EstimatedMinutes int
	IsPublished      bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// sortContentBySequence orders items by SequenceOrder ascending,
// preserving original order on ties.
func sortContentBySequence(items []ContentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SequenceOrder < items[j].SequenceOrder
	})
}

// Flashcard is a single front/back card in a flashcard deck.
type Flashcard struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty string `json:"difficulty,omitempty"`
}

// FlashcardDeck is the ContentData payload for FLASHCARD items.
type FlashcardDeck struct {
	Cards []Flashcard `json:"cards"`
}

// BookPage is one page of an interactive book.
type BookPage struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
	Media string `json:"media,omitempty"`
}

// InteractiveBook is the ContentData payload for INTERACTIVE_BOOK items.
type InteractiveBook struct {
	Pages []BookPage `json:"pages"`
}

// VideoCheckpoint is an inline prompt surfaced at a timestamp during an
// interactive video.
type VideoCheckpoint struct {
	ID         string               `json:"id"`
	TimestampS int                  `json:"timestamp"`
	Prompt     CheckpointDefinition `json:"prompt"`
	PauseVideo bool                 `json:"pause_video,omitempty"`
}

// InteractiveVideo is the ContentData payload for INTERACTIVE_VIDEO items.
type InteractiveVideo struct {
	VideoURL    string            `json:"video_url"`
	Checkpoints []VideoCheckpoint `json:"checkpoints,omitempty"`
}

// DecodeFlashcardDeck parses the ContentData payload of a FLASHCARD item.
func DecodeFlashcardDeck(raw json.RawMessage) (*FlashcardDeck, error) {
	var deck FlashcardDeck
	if err := json.Unmarshal(raw, &deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

// DecodeInteractiveBook parses the ContentData payload of an
// INTERACTIVE_BOOK item.
func DecodeInteractiveBook(raw json.RawMessage) (*InteractiveBook, error) {
	var book InteractiveBook
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DecodeInteractiveVideo parses the ContentData payload of an
// INTERACTIVE_VIDEO item.
func DecodeInteractiveVideo(raw json.RawMessage) (*InteractiveVideo, error) {
	var video InteractiveVideo
	if err := json.Unmarshal(raw, &video); err != nil {
		return nil, err
	}
	return &video, nil
}
