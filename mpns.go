// Package mpns is a client library for the Microsoft Push Notification
// Service. It builds tile, toast and raw notification payloads, submits
// them over a pooled HTTP client and classifies each response into a
// logical delivery outcome.
//
// Basic usage:
//
//	svc, err := mpns.New(
//		mpns.WithDelegate(delegate.Funcs{
//			OnFailed: func(n *notification.Notification, o response.Outcome) {
//				log.Printf("push %s failed: %s", n.MessageID(), o)
//			},
//		}),
//	)
//	if err != nil { ... }
//	defer svc.Close()
//
//	toast := mpns.NewToast().
//		MessageID(mpns.NewMessageID()).
//		Title("Hello").
//		Subtitle("from Go").
//		Build()
//	outcome, err := svc.Push(ctx, subscriptionURI, toast)
package mpns

import (
	"github.com/notifykit/mpns/pkg/config"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/observability"
	"github.com/notifykit/mpns/pkg/queue"
	"github.com/notifykit/mpns/pkg/service"
)

// Service is the push service façade.
type Service = service.Service

// Re-exported configuration options.
var (
	WithPoolSize   = config.WithPoolSize
	WithTimeout    = config.WithTimeout
	WithHTTPClient = config.WithHTTPClient
	WithLogger     = config.WithLogger
	WithDelegate   = config.WithDelegate
	WithQueue      = config.WithQueue
	WithRedisQueue = config.WithRedisQueue
	WithTelemetry  = config.WithTelemetry
)

// Re-exported notification builders and helpers.
var (
	NewTile      = notification.NewTile
	NewToast     = notification.NewToast
	NewRaw       = notification.NewRaw
	NewMessageID = notification.NewMessageID
)

// Delivery batching intervals.
const (
	Immediately = notification.Immediately
	Within450   = notification.Within450
	Within900   = notification.Within900
)

// New creates a push service from the given options. When a queue is
// configured the returned service sends asynchronously and delivers
// outcomes through the configured delegate.
func New(opts ...config.Option) (Service, error) {
	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}
	return build(cfg)
}

// NewFromEnvironment creates a push service configured from MPNS_*
// environment variables, with the given options applied on top.
func NewFromEnvironment(opts ...config.Option) (Service, error) {
	envOpts, err := config.FromEnvironment()
	if err != nil {
		return nil, err
	}
	cfg, err := config.New(append(envOpts, opts...)...)
	if err != nil {
		return nil, err
	}
	return build(cfg)
}

func build(cfg *config.Config) (Service, error) {
	telemetry, err := observability.NewTelemetry(cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	client := cfg.HTTPClient
	ownsClient := false
	if client == nil {
		client = service.NewPooledClient(cfg.PoolSize, cfg.Timeout)
		ownsClient = true
	}

	svc := service.New(service.Options{
		Client:     client,
		OwnsClient: ownsClient,
		Delegate:   cfg.Delegate,
		Telemetry:  telemetry,
		Logger:     cfg.Logger,
	})

	if !cfg.IsQueueEnabled() {
		return svc, nil
	}

	var q queue.Queue
	if cfg.Queue.Redis != nil {
		q, err = queue.NewRedis(queue.RedisOptions{
			Addr:     cfg.Queue.Redis.Addr,
			Password: cfg.Queue.Redis.Password,
			DB:       cfg.Queue.Redis.DB,
			Key:      cfg.Queue.Redis.Key,
			MaxSize:  cfg.Queue.Size,
		}, cfg.Logger)
		if err != nil {
			return nil, err
		}
	} else {
		q = queue.NewMemory(cfg.Queue.Size, cfg.Logger)
	}

	queued := service.NewQueued(svc, q, cfg.Queue.Workers, cfg.Logger)
	queued.Start()
	return queued, nil
}
