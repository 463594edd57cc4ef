package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointValidate_Quiz(t *testing.T) {
	tests := []struct {
		name    string
		def     CheckpointDefinition
		wantErr string
	}{
		{
			name: "valid quiz",
			def: CheckpointDefinition{
				Kind:          CheckpointQuiz,
				Question:      "What powers the cell?",
				Options:       []string{"Mitochondria", "Ribosome"},
				CorrectAnswer: "Mitochondria",
			},
		},
		{
			name: "missing question",
			def: CheckpointDefinition{
				Kind:          CheckpointQuiz,
				Options:       []string{"A", "B"},
				CorrectAnswer: "A",
			},
			wantErr: "question is required",
		},
		{
			name: "too few options",
			def: CheckpointDefinition{
				Kind:          CheckpointQuiz,
				Question:      "Q",
				Options:       []string{"A"},
				CorrectAnswer: "A",
			},
			wantErr: "at least 2 options",
		},
		{
			name: "correct answer not among options",
			def: CheckpointDefinition{
				Kind:          CheckpointQuiz,
				Question:      "Q",
				Options:       []string{"A", "B"},
				CorrectAnswer: "C",
			},
			wantErr: "not among the options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckpointValidate_Reflection(t *testing.T) {
	def := CheckpointDefinition{Kind: CheckpointReflection, Question: "How did this go?"}
	assert.NoError(t, def.Validate())

	def.Question = ""
	assert.ErrorContains(t, def.Validate(), "question is required")
}

func TestCheckpointValidate_UnknownKind(t *testing.T) {
	def := CheckpointDefinition{Kind: "POLL", Question: "Q"}
	assert.ErrorContains(t, def.Validate(), "unknown kind")
}

func TestDecodeCheckpoint(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "QUIZ",
		"question": "Pick A",
		"options": ["A", "B"],
		"correctAnswer": "A"
	}`)

	def, err := DecodeCheckpoint(raw)
	require.NoError(t, err)
	assert.Equal(t, CheckpointQuiz, def.Kind)
	assert.Equal(t, "A", def.CorrectAnswer)
}

func TestDecodeCheckpoint_MissingDefinitionIsError(t *testing.T) {
	_, err := DecodeCheckpoint(nil)
	assert.ErrorContains(t, err, "definition is required")

	_, err = DecodeCheckpoint(json.RawMessage(``))
	assert.ErrorContains(t, err, "definition is required")
}

func TestDecodeCheckpoint_MalformedJSON(t *testing.T) {
	_, err := DecodeCheckpoint(json.RawMessage(`{not json`))
	assert.ErrorContains(t, err, "decoding definition")
}
