package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe: a missing or unreachable redis
// behaves like a permanent cache miss, never an error.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a new Redis-backed cache.
func New(addr, password string, ttl time.Duration) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
	}
	return &Client{client: redis.NewClient(opts), ttl: ttl}
}

// Get returns the cached value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both count as a miss
		return nil
	}
	return res
}

// Set stores value with the configured TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, key, value, c.ttl)
}

// Delete removes keys, ignoring redis errors. Used for write invalidation.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
