// Package config provides the configuration system for the MPNS client.
package config

import (
	"net/http"
	"time"

	"github.com/notifykit/mpns/pkg/delegate"
	"github.com/notifykit/mpns/pkg/logger"
)

// Default connection pool and queue settings.
const (
	DefaultPoolSize     = 10
	DefaultTimeout      = 30 * time.Second
	DefaultQueueSize    = 1000
	DefaultQueueWorkers = 4
)

// Config holds the assembled client configuration.
type Config struct {
	// PoolSize bounds the transport's total and per-host connections.
	PoolSize int `json:"pool_size"`

	// Timeout is the per-request timeout owned by the transport layer.
	Timeout time.Duration `json:"timeout"`

	// Queue configures asynchronous sending. Disabled by default.
	Queue QueueConfig `json:"queue"`

	// Telemetry configures optional traces and metrics.
	Telemetry TelemetryConfig `json:"telemetry"`

	// HTTPClient, when set, is used instead of a library-built pooled
	// client. The caller keeps ownership of its lifecycle.
	HTTPClient *http.Client `json:"-"`

	// Delegate receives the outcome of every push attempt.
	Delegate delegate.Delegate `json:"-"`

	// Logger receives diagnostics. Defaults to the standard logger.
	Logger logger.Logger `json:"-"`
}

// QueueConfig configures the asynchronous send queue.
type QueueConfig struct {
	Enabled bool `json:"enabled"`
	Workers int  `json:"workers"`
	Size    int  `json:"size"`

	// Redis, when set, backs the queue with a Redis list instead of memory.
	Redis *RedisConfig `json:"redis,omitempty"`
}

// RedisConfig configures the Redis queue backend.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Key      string `json:"key"`
}

// TelemetryConfig configures optional OpenTelemetry instrumentation.
type TelemetryConfig struct {
	Enabled        bool    `json:"enabled"`
	ServiceName    string  `json:"service_name"`
	ServiceVersion string  `json:"service_version"`
	Environment    string  `json:"environment"`
	OTLPEndpoint   string  `json:"otlp_endpoint"`
	SampleRate     float64 `json:"sample_rate"`
}

// Option defines a functional option for configuration
type Option func(*Config) error

// New creates a new configuration with the given options
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		PoolSize: DefaultPoolSize,
		Timeout:  DefaultTimeout,
		Queue: QueueConfig{
			Enabled: false,
			Workers: DefaultQueueWorkers,
			Size:    DefaultQueueSize,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "mpns",
			SampleRate:  1.0,
		},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalizes the configuration, filling defaults for zero values.
func (c *Config) Validate() error {
	if c.PoolSize <= 0 {
		c.PoolSize = DefaultPoolSize
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Queue.Workers <= 0 {
		c.Queue.Workers = DefaultQueueWorkers
	}
	if c.Queue.Size <= 0 {
		c.Queue.Size = DefaultQueueSize
	}
	if c.Telemetry.SampleRate <= 0 || c.Telemetry.SampleRate > 1 {
		c.Telemetry.SampleRate = 1.0
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "mpns"
	}
	if c.Logger == nil {
		c.Logger = logger.New()
	}
	return nil
}

// IsQueueEnabled returns true if asynchronous sending is enabled.
func (c *Config) IsQueueEnabled() bool {
	return c.Queue.Enabled
}
