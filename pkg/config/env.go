package config

import (
	"time"

	"github.com/Netflix/go-env"

	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
)

// Environment holds the operational knobs that can be supplied through the
// process environment instead of code.
type Environment struct {
	PoolSize       int    `env:"MPNS_POOL_SIZE,default=10"`
	TimeoutSeconds int    `env:"MPNS_TIMEOUT_SECONDS,default=30"`
	QueueWorkers   int    `env:"MPNS_QUEUE_WORKERS,default=4"`
	QueueSize      int    `env:"MPNS_QUEUE_SIZE,default=1000"`
	RedisAddr      string `env:"MPNS_REDIS_ADDR"`
	RedisPassword  string `env:"MPNS_REDIS_PASSWORD"`
	RedisDB        int    `env:"MPNS_REDIS_DB,default=0"`
	LogLevel       string `env:"MPNS_LOG_LEVEL,default=warn"`
}

// FromEnvironment builds configuration options from environment variables.
// Explicit options passed alongside the returned ones take precedence by
// being applied later.
func FromEnvironment() ([]Option, error) {
	var e Environment
	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidConfig, "failed to load environment")
	}

	opts := []Option{
		WithPoolSize(e.PoolSize),
		WithTimeout(time.Duration(e.TimeoutSeconds) * time.Second),
		WithLogger(logger.New().LogMode(logger.ParseLevel(e.LogLevel))),
	}
	if e.RedisAddr != "" {
		opts = append(opts, WithRedisQueue(RedisConfig{
			Addr:     e.RedisAddr,
			Password: e.RedisPassword,
			DB:       e.RedisDB,
		}, e.QueueWorkers))
	}
	return opts, nil
}
