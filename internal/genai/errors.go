package genai

import "errors"

var (
	// ErrUnavailable indicates the Ollama server is unreachable.
	ErrUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
