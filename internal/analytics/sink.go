package analytics

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Sink receives analytics events
type Sink interface {
	Push(ctx context.Context, e Event) error
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(ctx context.Context, e Event) error

// Push calls f(ctx, e)
func (f SinkFunc) Push(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// Discard drops every event
var Discard Sink = SinkFunc(func(context.Context, Event) error { return nil })

// Queue is an in-memory event queue, the server-side counterpart of dataLayer
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty Queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends e to the queue
func (q *Queue) Push(_ context.Context, e Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
	return nil
}

// Events returns a copy of the queued events in arrival order
func (q *Queue) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// LogSink writes events to a zap logger
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a LogSink
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Push logs e at info level
func (s *LogSink) Push(_ context.Context, e Event) error {
	s.logger.Info("analytics event",
		zap.String("event_id", e.ID),
		zap.String("command", e.Command),
		zap.String("tracking_id", e.TrackingID),
		zap.Any("params", e.Params),
	)
	return nil
}
