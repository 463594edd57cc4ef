package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one service use-case execution: what ran, how long it
// took, whether it succeeded, plus use-case-specific fields (lesson id,
// imported content count, and so on).
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver returns an observer that logs each event as a
// structured line on the given writer. A nil writer yields a noop.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

// multiUseCaseObserver fans one event out to several observers.
type multiUseCaseObserver []UseCaseObserver

func (m multiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range m {
		obs.ObserveUseCase(ctx, event)
	}
}

func combineUseCaseObservers(observers []UseCaseObserver) UseCaseObserver {
	active := make(multiUseCaseObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			active = append(active, obs)
		}
	}
	switch len(active) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return active[0]
	default:
		return active
	}
}
