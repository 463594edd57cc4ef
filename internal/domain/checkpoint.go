package domain

import (
	"encoding/json"
	"fmt"
)

// CheckpointDefinition describes an inline checkpoint prompt. QUIZ
// checkpoints carry options and a correct answer; REFLECTION
// checkpoints accept any non-empty response.
type CheckpointDefinition struct {
	Kind          CheckpointKind `json:"type"`
	Question      string         `json:"question"`
	Options       []string       `json:"options,omitempty"`
	CorrectAnswer string         `json:"correctAnswer,omitempty"`
}

// Validate checks structural requirements for the definition.
// QUIZ checkpoints need at least two options and a correct answer that
// is one of them; REFLECTION checkpoints need only a question.
func (d *CheckpointDefinition) Validate() error {
	switch d.Kind {
	case CheckpointQuiz:
		if d.Question == "" {
			return fmt.Errorf("quiz checkpoint: question is required")
		}
		if len(d.Options) < 2 {
			return fmt.Errorf("quiz checkpoint: at least 2 options required, got %d", len(d.Options))
		}
		for _, opt := range d.Options {
			if opt == d.CorrectAnswer {
				return nil
			}
		}
		return fmt.Errorf("quiz checkpoint: correct answer %q is not among the options", d.CorrectAnswer)
	case CheckpointReflection:
		if d.Question == "" {
			return fmt.Errorf("reflection checkpoint: question is required")
		}
		return nil
	default:
		return fmt.Errorf("checkpoint: unknown kind %q", d.Kind)
	}
}

// DecodeCheckpoint parses and validates the ContentData payload of a
// CHECKPOINT item. A missing or empty payload is an error: there is no
// placeholder checkpoint to fall back to.
func DecodeCheckpoint(raw json.RawMessage) (*CheckpointDefinition, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("checkpoint: definition is required")
	}
	var def CheckpointDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("checkpoint: decoding definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}
