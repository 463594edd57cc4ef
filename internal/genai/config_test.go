package genai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_DisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.NotEmpty(t, cfg.Tasks)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DARASA_AI_ENABLED", "true")
	t.Setenv("DARASA_AI_MODEL", "mistral")
	t.Setenv("DARASA_AI_ENDPOINT", "http://ollama.local:11434")
	t.Setenv("DARASA_AI_TIMEOUT_MS", "2500")
	t.Setenv("DARASA_AI_MAX_RETRIES", "3")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "http://ollama.local:11434", cfg.Endpoint)
	assert.Equal(t, 2500, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("DARASA_AI_TIMEOUT_MS", "not-a-number")
	t.Setenv("DARASA_AI_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 30000, cfg.TaskTimeout(TaskLessonDraft))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")))
}

func TestLoadConfig_TaskTimeoutOverride(t *testing.T) {
	t.Setenv("DARASA_AI_QUIZ_DRAFT_TIMEOUT_MS", "1234")

	cfg := LoadConfig()

	assert.Equal(t, 1234, cfg.TaskTimeout(TaskQuizDraft))
}
