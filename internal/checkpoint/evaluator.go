// Package checkpoint decides the verdict for inline checkpoint
// submissions. Checkpoints are one-shot: a successful evaluation always
// completes the item, and correctness is feedback only.
package checkpoint

import (
	"errors"
	"strings"

	"github.com/darasahq/darasa/internal/domain"
)

// ErrEmptyAnswer indicates a submission with no answer. Callers reject
// this at the input boundary; it is never evaluated as incorrect.
var ErrEmptyAnswer = errors.New("checkpoint answer must not be empty")

// Result is the verdict for one checkpoint submission. Complete is true
// for every successful evaluation regardless of correctness: a wrong
// quiz answer still finishes the checkpoint, the learner just sees the
// feedback.
type Result struct {
	Correct  bool
	Complete bool
}

// Evaluate scores a candidate answer against the definition.
// QUIZ answers must match the correct option exactly; REFLECTION accepts
// any non-empty response. A nil definition is an error: there is no
// sample checkpoint to substitute.
func Evaluate(def *domain.CheckpointDefinition, answer string) (Result, error) {
	if def == nil {
		return Result{}, errors.New("checkpoint definition is required")
	}
	if strings.TrimSpace(answer) == "" {
		return Result{}, ErrEmptyAnswer
	}

	switch def.Kind {
	case domain.CheckpointQuiz:
		return Result{Correct: answer == def.CorrectAnswer, Complete: true}, nil
	case domain.CheckpointReflection:
		return Result{Correct: true, Complete: true}, nil
	default:
		return Result{}, errors.New("checkpoint: unknown kind " + string(def.Kind))
	}
}
