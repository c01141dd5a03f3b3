package queue

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/notifykit/mpns/pkg/errors"
	"github.com/notifykit/mpns/pkg/logger"
)

const defaultRedisKey = "mpns:queue"

// RedisOptions configures the Redis queue backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// Key is the Redis list the queue lives in, "mpns:queue" by default.
	Key string

	// MaxSize caps the queue length; 0 means unbounded.
	MaxSize int
}

// redisQueue implements Queue on a Redis list.
type redisQueue struct {
	client  *redis.Client
	key     string
	maxSize int
	closed  int32
	logger  logger.Logger
}

// NewRedis creates a Redis-backed queue and verifies the connection.
func NewRedis(opts RedisOptions, log logger.Logger) (Queue, error) {
	if log == nil {
		log = logger.Discard
	}
	if opts.Key == "" {
		opts.Key = defaultRedisKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConnectionFailed, "failed to connect to Redis at %s", opts.Addr)
	}

	log.Info("Redis queue created", "addr", opts.Addr, "key", opts.Key)

	return &redisQueue{
		client:  client,
		key:     opts.Key,
		maxSize: opts.MaxSize,
		logger:  log,
	}, nil
}

func (q *redisQueue) Enqueue(ctx context.Context, env *Envelope) error {
	if atomic.LoadInt32(&q.closed) == 1 {
		return ErrQueueClosed
	}

	if q.maxSize > 0 {
		length, err := q.client.LLen(ctx, q.key).Result()
		if err != nil {
			return errors.Wrap(err, errors.ErrConnectionFailed, "failed to check queue length")
		}
		if length >= int64(q.maxSize) {
			return ErrQueueFull
		}
	}

	data, err := json.Marshal(env)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize envelope")
	}

	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return errors.Wrap(err, errors.ErrConnectionFailed, "failed to enqueue envelope")
	}

	q.logger.Debug("Envelope enqueued to Redis", "uri", env.URI, "key", q.key)
	return nil
}

func (q *redisQueue) Dequeue(ctx context.Context) (*Envelope, error) {
	for {
		if atomic.LoadInt32(&q.closed) == 1 {
			return nil, ErrQueueClosed
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Short block so close and cancellation are observed promptly.
		values, err := q.client.BRPop(ctx, time.Second, q.key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errors.Wrap(err, errors.ErrConnectionFailed, "failed to dequeue envelope")
		}
		if len(values) != 2 {
			continue
		}

		var env Envelope
		if err := json.Unmarshal([]byte(values[1]), &env); err != nil {
			q.logger.Error("Dropping undecodable envelope", "key", q.key, "error", err)
			continue
		}
		return &env, nil
	}
}

func (q *redisQueue) Size() int {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	length, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		q.logger.Error("Failed to get queue size", "error", err)
		return 0
	}
	return int(length)
}

func (q *redisQueue) Close() error {
	if !atomic.CompareAndSwapInt32(&q.closed, 0, 1) {
		return nil
	}
	q.logger.Debug("Redis queue closed", "key", q.key)
	return q.client.Close()
}
