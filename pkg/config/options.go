package config

import (
	"net/http"
	"time"

	"github.com/notifykit/mpns/pkg/delegate"
	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
)

// WithPoolSize bounds the HTTP transport's total and per-host connections.
func WithPoolSize(size int) Option {
	return func(c *Config) error {
		if size <= 0 {
			return errors.Newf(errors.ErrInvalidConfig, "pool size must be positive, got %d", size)
		}
		c.PoolSize = size
		return nil
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return errors.Newf(errors.ErrInvalidConfig, "timeout must be positive, got %v", timeout)
		}
		c.Timeout = timeout
		return nil
	}
}

// WithHTTPClient injects a caller-owned HTTP client. The pool size and
// timeout options do not apply to an injected client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) error {
		if client == nil {
			return errors.New(errors.ErrInvalidConfig, "http client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Config) error {
		if log == nil {
			return errors.New(errors.ErrInvalidConfig, "logger cannot be nil")
		}
		c.Logger = log
		return nil
	}
}

// WithDelegate sets the delegate that receives push outcomes.
func WithDelegate(d delegate.Delegate) Option {
	return func(c *Config) error {
		c.Delegate = d
		return nil
	}
}

// WithQueue enables asynchronous sending through an in-memory queue.
func WithQueue(workers, size int) Option {
	return func(c *Config) error {
		if workers <= 0 {
			return errors.Newf(errors.ErrInvalidConfig, "queue workers must be positive, got %d", workers)
		}
		if size <= 0 {
			return errors.Newf(errors.ErrInvalidConfig, "queue size must be positive, got %d", size)
		}
		c.Queue.Enabled = true
		c.Queue.Workers = workers
		c.Queue.Size = size
		return nil
	}
}

// WithRedisQueue enables asynchronous sending through a Redis-backed queue.
func WithRedisQueue(redis RedisConfig, workers int) Option {
	return func(c *Config) error {
		if redis.Addr == "" {
			return errors.New(errors.ErrInvalidConfig, "redis address cannot be empty")
		}
		if workers <= 0 {
			return errors.Newf(errors.ErrInvalidConfig, "queue workers must be positive, got %d", workers)
		}
		c.Queue.Enabled = true
		c.Queue.Workers = workers
		c.Queue.Redis = &redis
		return nil
	}
}

// WithTelemetry enables OpenTelemetry traces and metrics for pushes.
func WithTelemetry(t TelemetryConfig) Option {
	return func(c *Config) error {
		t.Enabled = true
		c.Telemetry = t
		return nil
	}
}
