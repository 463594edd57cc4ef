package genai

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskLessonDraft  TaskType = "lesson_draft"
	TaskQuizDraft    TaskType = "quiz_draft"
	TaskSummaryDraft TaskType = "summary_draft"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the draft-generation subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// Generation is disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskLessonDraft:  {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
			TaskQuizDraft:    {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 10000},
			TaskSummaryDraft: {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 8000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DARASA_AI_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DARASA_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DARASA_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DARASA_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DARASA_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DARASA_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskLessonDraft, "DARASA_AI_LESSON_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuizDraft, "DARASA_AI_QUIZ_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSummaryDraft, "DARASA_AI_SUMMARY_DRAFT_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
