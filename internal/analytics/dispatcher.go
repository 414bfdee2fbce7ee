package analytics

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const defaultBufferSize = 64

// Dispatcher delivers events to a Sink without blocking the caller.
// Events are dropped when the buffer is full or the sink fails; there
// is no retry and no ordering guarantee relative to page rendering.
type Dispatcher struct {
	sink   Sink
	logger *zap.Logger
	events chan Event
	done   chan struct{}
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts a Dispatcher with the given buffer size
func NewDispatcher(sink Sink, logger *zap.Logger, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.events {
		if err := d.sink.Push(context.Background(), e); err != nil {
			d.logger.Debug("analytics event dropped", zap.String("event_id", e.ID), zap.Error(err))
		}
	}
}

// Push enqueues e. A full buffer or a closed dispatcher drops it silently.
func (d *Dispatcher) Push(_ context.Context, e Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return nil
	}
	select {
	case d.events <- e:
	default:
		d.logger.Debug("analytics buffer full, event dropped", zap.String("event_id", e.ID))
	}
	return nil
}

// Close stops accepting events and waits for queued ones to drain
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.events)
		d.mu.Unlock()
	})
	<-d.done
}
