package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Cache is a minimal persistent key/value store. Values never expire; the
// cached data (team names keyed by tournament/group/code) is immutable for a
// season.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, 0).Err()
}

// NoopCache never hits and never stores. Used when REDIS_ADDR is not
// configured and in tests.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (NoopCache) Set(ctx context.Context, key, value string) error    { return nil }
