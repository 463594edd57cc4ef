package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestCombineUseCaseObservers_FansOut(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}

	obs := combineUseCaseObservers([]UseCaseObserver{a, nil, b})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "lesson_import", Success: true})

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, "lesson_import", a.events[0].Name)
}

func TestCombineUseCaseObservers_EmptyIsNoop(t *testing.T) {
	obs := combineUseCaseObservers(nil)
	assert.NotPanics(t, func() {
		obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "lesson_import"})
	})
}

func TestLogUseCaseObserver_WritesFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "lesson_import",
		Duration: 12 * time.Millisecond,
		Fields:   map[string]any{"lesson_id": "l1", "content_count": 3},
	})
	out := buf.String()
	assert.Contains(t, out, "use_case=lesson_import")
	assert.Contains(t, out, "lesson_id=l1")
	assert.Contains(t, out, "content_count=3")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "lesson_import",
		Err:  errors.New("schema invalid"),
	})
	out = buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "schema invalid")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}
