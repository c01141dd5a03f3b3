// Package queue provides the asynchronous send queue for the MPNS client.
// It supports an in-memory backend and a Redis-backed one for processes
// that share a queue.
package queue

import (
	"context"
	"time"

	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/notification"
)

var (
	// ErrQueueFull is returned when the queue is at capacity.
	ErrQueueFull = errors.New(errors.ErrQueueFull, "queue is full")

	// ErrQueueClosed is returned when operating on a closed queue.
	ErrQueueClosed = errors.New(errors.ErrQueueClosed, "queue is closed")
)

// Envelope is a queued push: the subscription URI plus the serialized
// notification. Body bytes round-trip through JSON as base64.
type Envelope struct {
	URI        string                `json:"uri"`
	Headers    []notification.Header `json:"headers"`
	Body       []byte                `json:"body"`
	EnqueuedAt time.Time             `json:"enqueued_at"`
}

// NewEnvelope wraps a notification for queueing.
func NewEnvelope(uri string, n *notification.Notification) *Envelope {
	return &Envelope{
		URI:        uri,
		Headers:    n.Headers(),
		Body:       n.Body(),
		EnqueuedAt: time.Now(),
	}
}

// Notification reconstructs the queued notification.
func (e *Envelope) Notification() *notification.Notification {
	return notification.New(e.Headers, e.Body)
}

// Queue is the interface send queue backends implement. Implementations
// must be safe for concurrent use.
type Queue interface {
	// Enqueue adds an envelope to the queue without blocking.
	Enqueue(ctx context.Context, env *Envelope) error

	// Dequeue removes and returns the next envelope, blocking until one is
	// available, the context is cancelled, or the queue is closed.
	Dequeue(ctx context.Context) (*Envelope, error)

	// Size returns the number of queued envelopes.
	Size() int

	// Close shuts the queue down. Pending Dequeue calls return ErrQueueClosed.
	Close() error
}
