package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries with SET EX and reads them with GET
type RedisCache struct {
	client     redis.UniversalClient
	defaultTTL time.Duration
}

// NewRedis wraps an existing client
func NewRedis(client redis.UniversalClient, defaultTTL time.Duration) *RedisCache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &RedisCache{client: client, defaultTTL: defaultTTL}
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Ping implements Cache
func (c *RedisCache) Ping(ctx context.Context) error { return c.client.Ping(ctx).Err() }

// Backend implements Cache
func (c *RedisCache) Backend() string { return "redis" }

// Client exposes the underlying client so the rate limiter can share it
func (c *RedisCache) Client() redis.UniversalClient { return c.client }

// Close releases the connection pool
func (c *RedisCache) Close() error { return c.client.Close() }
