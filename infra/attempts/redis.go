package attempts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps attempt counters in Redis so that every server instance
// sees the same lockouts.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore connects to url and verifies the connection.
func NewRedisStore(url, prefix string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("attempt store: invalid URL: %w", err)
	}
	return NewRedisStoreWithOptions(opt, prefix, logger)
}

// NewRedisStoreWithOptions creates a RedisStore from redis.Options.
func NewRedisStoreWithOptions(opt *redis.Options, prefix string, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("attempt store: connection failed: %w", err)
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}, nil
}

func (r *RedisStore) key(key string) string {
	return r.prefix + "login_attempts:" + key
}

func (r *RedisStore) Failures(ctx context.Context, key string) (int, error) {
	n, err := r.client.Get(ctx, r.key(key)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Redis attempt get error", "key", key, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *RedisStore) RecordFailure(ctx context.Context, key string, window time.Duration) (int, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, r.key(key))
		pipe.ExpireNX(ctx, r.key(key), window)
		return nil
	})
	if err != nil {
		r.logger.Error("Redis attempt increment error", "key", key, "error", err)
		return 0, err
	}
	r.logger.Debug("Redis attempt recorded", "key", key, "count", incr.Val())
	return int(incr.Val()), nil
}

func (r *RedisStore) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis attempt reset error", "key", key, "error", err)
		return err
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
