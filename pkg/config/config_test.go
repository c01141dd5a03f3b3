package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/mpns/pkg/delegate"
	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
	"github.com/notifykit/mpns/pkg/notification"
	"github.com/notifykit/mpns/pkg/response"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, DefaultPoolSize, cfg.PoolSize)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.IsQueueEnabled())
	assert.Equal(t, DefaultQueueWorkers, cfg.Queue.Workers)
	assert.Equal(t, DefaultQueueSize, cfg.Queue.Size)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "mpns", cfg.Telemetry.ServiceName)
	assert.Equal(t, 1.0, cfg.Telemetry.SampleRate)
	assert.NotNil(t, cfg.Logger)
	assert.Nil(t, cfg.HTTPClient)
	assert.Nil(t, cfg.Delegate)
}

func TestNewWithOptions(t *testing.T) {
	client := &http.Client{}
	d := delegate.Funcs{
		OnSent: func(*notification.Notification, response.Outcome) {},
	}

	cfg, err := New(
		WithPoolSize(25),
		WithTimeout(5*time.Second),
		WithHTTPClient(client),
		WithLogger(logger.Discard),
		WithDelegate(d),
		WithQueue(2, 64),
	)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.PoolSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Same(t, client, cfg.HTTPClient)
	assert.Equal(t, logger.Discard, cfg.Logger)
	assert.NotNil(t, cfg.Delegate)
	assert.True(t, cfg.IsQueueEnabled())
	assert.Equal(t, 2, cfg.Queue.Workers)
	assert.Equal(t, 64, cfg.Queue.Size)
	assert.Nil(t, cfg.Queue.Redis)
}

func TestNewWithRedisQueue(t *testing.T) {
	cfg, err := New(WithRedisQueue(RedisConfig{Addr: "localhost:6379", DB: 1}, 3))
	require.NoError(t, err)

	assert.True(t, cfg.IsQueueEnabled())
	assert.Equal(t, 3, cfg.Queue.Workers)
	require.NotNil(t, cfg.Queue.Redis)
	assert.Equal(t, "localhost:6379", cfg.Queue.Redis.Addr)
	assert.Equal(t, 1, cfg.Queue.Redis.DB)
}

func TestNewWithTelemetry(t *testing.T) {
	cfg, err := New(WithTelemetry(TelemetryConfig{
		ServiceName:  "push-sender",
		OTLPEndpoint: "localhost:4318",
		SampleRate:   0.5,
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "push-sender", cfg.Telemetry.ServiceName)
	assert.Equal(t, 0.5, cfg.Telemetry.SampleRate)
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero pool size", WithPoolSize(0)},
		{"negative pool size", WithPoolSize(-5)},
		{"zero timeout", WithTimeout(0)},
		{"nil http client", WithHTTPClient(nil)},
		{"nil logger", WithLogger(nil)},
		{"zero queue workers", WithQueue(0, 10)},
		{"zero queue size", WithQueue(1, 0)},
		{"empty redis addr", WithRedisQueue(RedisConfig{}, 1)},
		{"redis zero workers", WithRedisQueue(RedisConfig{Addr: "localhost:6379"}, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			require.Error(t, err)
			assert.Equal(t, errors.ErrInvalidConfig, errors.GetErrorCode(err))
		})
	}
}

func TestValidateNormalizesZeroValues(t *testing.T) {
	cfg := &Config{Telemetry: TelemetryConfig{SampleRate: 2.5}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultPoolSize, cfg.PoolSize)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultQueueWorkers, cfg.Queue.Workers)
	assert.Equal(t, DefaultQueueSize, cfg.Queue.Size)
	assert.Equal(t, 1.0, cfg.Telemetry.SampleRate)
	assert.Equal(t, "mpns", cfg.Telemetry.ServiceName)
	assert.NotNil(t, cfg.Logger)
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("MPNS_POOL_SIZE", "7")
	t.Setenv("MPNS_TIMEOUT_SECONDS", "12")
	t.Setenv("MPNS_LOG_LEVEL", "debug")

	opts, err := FromEnvironment()
	require.NoError(t, err)

	cfg, err := New(opts...)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.PoolSize)
	assert.Equal(t, 12*time.Second, cfg.Timeout)
	assert.False(t, cfg.IsQueueEnabled())
}

func TestFromEnvironmentRedis(t *testing.T) {
	t.Setenv("MPNS_REDIS_ADDR", "localhost:6379")
	t.Setenv("MPNS_REDIS_DB", "2")
	t.Setenv("MPNS_QUEUE_WORKERS", "6")

	opts, err := FromEnvironment()
	require.NoError(t, err)

	cfg, err := New(opts...)
	require.NoError(t, err)

	assert.True(t, cfg.IsQueueEnabled())
	assert.Equal(t, 6, cfg.Queue.Workers)
	require.NotNil(t, cfg.Queue.Redis)
	assert.Equal(t, "localhost:6379", cfg.Queue.Redis.Addr)
	assert.Equal(t, 2, cfg.Queue.Redis.DB)
}

func TestExplicitOptionsOverrideEnvironment(t *testing.T) {
	t.Setenv("MPNS_POOL_SIZE", "7")

	opts, err := FromEnvironment()
	require.NoError(t, err)

	cfg, err := New(append(opts, WithPoolSize(99))...)
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.PoolSize)
}
