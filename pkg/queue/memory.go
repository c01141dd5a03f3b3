package queue

import (
	"context"
	"sync"

	"github.com/notifykit/mpns/pkg/logger"
)

// memoryQueue is a bounded in-process queue backed by a channel.
type memoryQueue struct {
	ch     chan *Envelope
	closed chan struct{}
	once   sync.Once
	logger logger.Logger
}

// NewMemory creates an in-memory queue with the given capacity.
func NewMemory(capacity int, log logger.Logger) Queue {
	if log == nil {
		log = logger.Discard
	}
	return &memoryQueue{
		ch:     make(chan *Envelope, capacity),
		closed: make(chan struct{}),
		logger: log,
	}
}

func (q *memoryQueue) Enqueue(ctx context.Context, env *Envelope) error {
	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}

	select {
	case q.ch <- env:
		q.logger.Debug("Envelope enqueued", "uri", env.URI, "queue_size", len(q.ch))
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *memoryQueue) Dequeue(ctx context.Context) (*Envelope, error) {
	select {
	case env := <-q.ch:
		return env, nil
	case <-q.closed:
		// Drain remaining envelopes before reporting closed.
		select {
		case env := <-q.ch:
			return env, nil
		default:
			return nil, ErrQueueClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *memoryQueue) Size() int {
	return len(q.ch)
}

func (q *memoryQueue) Close() error {
	q.once.Do(func() {
		close(q.closed)
		q.logger.Debug("Memory queue closed", "pending", len(q.ch))
	})
	return nil
}
