package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "textlens:translation:"

// RedisCache stores translations in Redis with an expiry
type RedisCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the Redis server at url (redis://...). A zero
// ttl keeps entries forever.
func NewRedisCache(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get implements Cache
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read translation: %w", err)
	}
	return val, true, nil
}

// Set implements Cache
func (c *RedisCache) Set(ctx context.Context, key, translation string) error {
	if err := c.client.Set(ctx, redisKeyPrefix+key, translation, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write translation: %w", err)
	}
	return nil
}

// Ping implements Cache
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close implements Cache
func (c *RedisCache) Close() error {
	return c.client.Close()
}
