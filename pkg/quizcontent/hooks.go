package quizcontent

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// NoopEventSink is an event sink that discards all events
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-op event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

func (s *NoopEventSink) CategoryCreated(ctx context.Context, category *Category) error {
	return nil
}

func (s *NoopEventSink) CategoryUpdated(ctx context.Context, category *Category) error {
	return nil
}

func (s *NoopEventSink) CategoryDeleted(ctx context.Context, title string) error {
	return nil
}

// LogEventSink records every admin mutation as a structured log entry with
// a unique event id, giving an audit trail for content edits.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates an event sink backed by the given logger. A nil
// logger falls back to slog.Default().
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

func (s *LogEventSink) CategoryCreated(ctx context.Context, category *Category) error {
	s.logger.InfoContext(ctx, "category created",
		"event_id", uuid.New().String(),
		"title", category.Title,
		"questions", len(category.Questions),
		"locked", category.Locked,
		"adult", category.Adult,
	)
	return nil
}

func (s *LogEventSink) CategoryUpdated(ctx context.Context, category *Category) error {
	s.logger.InfoContext(ctx, "category updated",
		"event_id", uuid.New().String(),
		"title", category.Title,
		"questions", len(category.Questions),
	)
	return nil
}

func (s *LogEventSink) CategoryDeleted(ctx context.Context, title string) error {
	s.logger.InfoContext(ctx, "category deleted",
		"event_id", uuid.New().String(),
		"title", title,
	)
	return nil
}
