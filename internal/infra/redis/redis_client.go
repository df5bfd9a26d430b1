package redis

import (
	"context"
	"time"

	"academic-hub/internal/config"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by Get when the key does not exist. Callers
// compare against this instead of importing the driver's sentinel.
var ErrCacheMiss = redis.Nil

// RedisClient is the subset of redis commands the app depends on; cache
// decorators and the rate limiter take this instead of *redis.Client.
type RedisClient interface {
	Ping(ctx context.Context) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Close() error
}

type redClient struct {
	cli *redis.Client
}

var _ RedisClient = (*redClient)(nil)

// NewClient dials redis and verifies the connection before returning.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redClient, error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		cli.Close()
		return nil, err
	}
	return &redClient{cli: cli}, nil
}

func (c *redClient) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx).Err()
}

func (c *redClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.cli.Set(ctx, key, value, ttl).Err()
}

func (c *redClient) Get(ctx context.Context, key string) (string, error) {
	return c.cli.Get(ctx, key).Result()
}

func (c *redClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.cli.Incr(ctx, key).Result()
}

func (c *redClient) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.cli.Expire(ctx, key, ttl).Err()
}

func (c *redClient) Del(ctx context.Context, keys ...string) error {
	return c.cli.Del(ctx, keys...).Err()
}

func (c *redClient) Close() error {
	return c.cli.Close()
}
