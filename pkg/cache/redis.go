package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis. Intended for server deployments where
// several instances share one compile cache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis at addr (e.g. "localhost:6379") and
// verifies the connection with a ping.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", addr, err)
	}
	return &RedisCache{client: client}, nil
}

// Get retrieves an entry from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores an entry without expiration; keys are content-addressed.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, 0).Err()
}

// Delete removes an entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
