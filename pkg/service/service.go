// Package service implements the push service façade: it submits built
// notifications to the vendor endpoint over a pooled HTTP client,
// classifies the response and fires the delegate.
package service

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/notifykit/mpns/pkg/delegate"
	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/observability"
	"github.com/notifykit/mpns/pkg/response"
)

// Service sends push notifications to subscription URIs.
type Service interface {
	// Push submits the notification to the subscription's callback URI and
	// returns its classified outcome. A non-nil error marks a transport
	// failure; the outcome is then Undefined and the delegate is not fired.
	// Vendor-reported failures return a nil error with a non-success
	// outcome, surfaced additionally through the failure delegate.
	Push(ctx context.Context, uri string, n *notification.Notification) (response.Outcome, error)

	// Close releases pooled connections. In-flight pushes run to completion.
	Close() error
}

// pushService is the synchronous Service implementation.
type pushService struct {
	client     *http.Client
	ownsClient bool
	classifier *response.Classifier
	notifier   *delegate.Notifier
	telemetry  *observability.Telemetry
	logger     logger.Logger
	closed     int32
}

// Options assembles a push service.
type Options struct {
	// Client is the transport; required.
	Client *http.Client

	// OwnsClient marks the client as library-built, so Close releases its
	// idle connections.
	OwnsClient bool

	// Delegate receives push outcomes; may be nil.
	Delegate delegate.Delegate

	// Telemetry records traces and metrics; may be nil.
	Telemetry *observability.Telemetry

	// Logger receives diagnostics; defaults to Discard.
	Logger logger.Logger
}

// New creates a synchronous push service.
func New(opts Options) Service {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}
	return &pushService{
		client:     opts.Client,
		ownsClient: opts.OwnsClient,
		classifier: response.NewClassifier(log),
		notifier:   delegate.NewNotifier(opts.Delegate, log),
		telemetry:  opts.Telemetry,
		logger:     log,
	}
}

func (s *pushService) Push(ctx context.Context, uri string, n *notification.Notification) (response.Outcome, error) {
	if atomic.LoadInt32(&s.closed) == 1 {
		return response.Undefined, errors.New(errors.ErrServiceClosed, "service is closed")
	}
	if uri == "" {
		return response.Undefined, errors.New(errors.ErrInvalidURI, "subscription URI cannot be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(n.Body()))
	if err != nil {
		return response.Undefined, errors.Wrap(err, errors.ErrInvalidURI, "failed to build push request").WithURI(uri)
	}
	n.ApplyHeaders(req)

	var span trace.Span
	if s.telemetry != nil {
		ctx, span = s.telemetry.StartPush(ctx, uri)
		req = req.WithContext(ctx)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		transportErr := wrapTransportError(err, uri)
		s.logger.Error("Push transport failure",
			"uri", uri,
			"message_id", n.MessageID(),
			"error", transportErr)
		if s.telemetry != nil {
			s.telemetry.RecordPush(ctx, span, response.Undefined, duration, transportErr)
		}
		return response.Undefined, transportErr
	}
	defer func() {
		// Drain so the pooled connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	outcome := s.classifier.ClassifyResponse(resp)

	s.logger.Debug("Push response classified",
		"uri", uri,
		"message_id", n.MessageID(),
		"status", resp.StatusCode,
		"outcome", outcome.Name(),
		"duration", duration)

	s.notifier.Notify(n, outcome)

	if s.telemetry != nil {
		s.telemetry.RecordPush(ctx, span, outcome, duration, nil)
	}

	return outcome, nil
}

func (s *pushService) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil
	}
	if s.ownsClient {
		s.client.CloseIdleConnections()
	}
	return nil
}

// wrapTransportError maps a transport failure onto the network error
// category, distinguishing timeouts from connection failures.
func wrapTransportError(err error, uri string) *errors.Error {
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrap(err, errors.ErrNetworkTimeout, "push request timed out").WithURI(uri)
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.ErrNetworkTimeout, "push request timed out").WithURI(uri)
	}
	return errors.Wrap(err, errors.ErrConnectionFailed, "push request failed").WithURI(uri)
}
