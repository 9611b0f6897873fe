// Package redis wraps go-redis behind the narrow surface this service
// actually uses: capped-list operations for the activity feed plus a health
// probe.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"esgledger/internal/platform/config"
)

// Client is a connected Redis handle. A nil *Client means Redis is not
// configured; callers treat that as "feature off", not an error.
type Client struct {
	rdb *redis.Client
}

// New connects and pings. Returns nil if the URL is empty.
func New(cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: client}, nil
}

// PushCapped prepends payload to the named list and trims the list to max
// entries, in a single round trip.
func (c *Client) PushCapped(ctx context.Context, key string, payload []byte, max int64) error {
	pipe := c.rdb.Pipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, max-1)
	_, err := pipe.Exec(ctx)
	return err
}

// RangeHead returns the first limit entries of the named list, newest-first
// given PushCapped's prepend order.
func (c *Client) RangeHead(ctx context.Context, key string, limit int64) ([]string, error) {
	return c.rdb.LRange(ctx, key, 0, limit-1).Result()
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
