package service

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/queue"
	"github.com/notifykit/mpns/pkg/response"
)

// DefaultShutdownTimeout bounds how long Close waits for workers to drain.
const DefaultShutdownTimeout = 10 * time.Second

// QueuedService wraps a Service with a send queue and a worker pool.
// Push enqueues and returns immediately; workers perform the sends and
// outcomes reach the caller through the wrapped service's delegate.
type QueuedService struct {
	inner   Service
	queue   queue.Queue
	workers int
	logger  logger.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	stopped bool
	mutex   sync.Mutex
}

// NewQueued creates a queued service with the given worker count.
func NewQueued(inner Service, q queue.Queue, workers int, log logger.Logger) *QueuedService {
	if log == nil {
		log = logger.Discard
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QueuedService{
		inner:   inner,
		queue:   q,
		workers: workers,
		logger:  log,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the worker pool.
func (s *QueuedService) Start() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.logger.Info("Starting send workers", "worker_count", s.workers)
	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
}

// Push enqueues the notification for asynchronous delivery. The returned
// outcome is always Undefined; the real outcome arrives via the delegate.
func (s *QueuedService) Push(ctx context.Context, uri string, n *notification.Notification) (response.Outcome, error) {
	s.mutex.Lock()
	stopped := s.stopped
	s.mutex.Unlock()
	if stopped {
		return response.Undefined, errors.New(errors.ErrServiceClosed, "service is closed")
	}
	if uri == "" {
		return response.Undefined, errors.New(errors.ErrInvalidURI, "subscription URI cannot be empty")
	}

	if err := s.queue.Enqueue(ctx, queue.NewEnvelope(uri, n)); err != nil {
		return response.Undefined, err
	}
	return response.Undefined, nil
}

// Close drains the queue, stops the workers and closes the wrapped service.
func (s *QueuedService) Close() error {
	return s.Stop(DefaultShutdownTimeout)
}

// Stop shuts the worker pool down, waiting up to timeout for queued sends
// to drain.
func (s *QueuedService) Stop(timeout time.Duration) error {
	s.mutex.Lock()
	if s.stopped {
		s.mutex.Unlock()
		return nil
	}
	s.stopped = true
	s.mutex.Unlock()

	s.logger.Info("Stopping send workers", "timeout", timeout)

	// Closing the queue lets workers drain what is left and then exit.
	_ = s.queue.Close()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	var stopErr error
	select {
	case <-done:
		s.logger.Info("Send workers stopped")
	case <-time.After(timeout):
		s.logger.Warn("Send worker stop timeout exceeded")
		s.cancel()
		stopErr = errors.New(errors.ErrInternal, "timeout waiting for send workers to stop")
	}

	if err := s.inner.Close(); err != nil && stopErr == nil {
		stopErr = err
	}
	return stopErr
}

// worker dequeues envelopes and pushes them through the wrapped service.
func (s *QueuedService) worker(id int) {
	defer s.wg.Done()

	s.logger.Debug("Send worker started", "worker_id", id)

	for {
		env, err := s.queue.Dequeue(s.ctx)
		if err != nil {
			if stderrors.Is(err, queue.ErrQueueClosed) || s.ctx.Err() != nil {
				s.logger.Debug("Send worker stopping", "worker_id", id)
				return
			}
			s.logger.Error("Failed to dequeue envelope", "worker_id", id, "error", err)
			time.Sleep(100 * time.Millisecond)
			continue
		}

		if _, err := s.inner.Push(s.ctx, env.URI, env.Notification()); err != nil {
			// Transport failures cannot reach the delegate; log them here.
			s.logger.Error("Queued push failed",
				"worker_id", id,
				"uri", env.URI,
				"error", err)
		}
	}
}
