package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps go-redis with the operations the analytics bridge needs
type Client struct {
	rdb        *redis.Client
	KeyBuilder *KeyBuilder
	log        *zap.Logger
}

// NewClient creates a new Redis client and verifies connectivity
func NewClient(redisURL string, environment string, log *zap.Logger) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, KeyBuilder: NewKeyBuilder(environment), log: log}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// Health checks the connection
func (c *Client) Health(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// LPush pushes a value onto the head of a list
func (c *Client) LPush(ctx context.Context, key string, value interface{}) error {
	start := time.Now()
	err := c.rdb.LPush(ctx, key, value).Err()
	c.log.Debug("redis_lpush",
		zap.String("key", key),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))
	return err
}

// LTrim trims a list to the given inclusive range
func (c *Client) LTrim(ctx context.Context, key string, start, stop int64) error {
	err := c.rdb.LTrim(ctx, key, start, stop).Err()
	if err != nil {
		c.log.Info("redis_ltrim", zap.String("key", key), zap.Error(err))
	}
	return err
}

// LRange returns a slice of a list
func (c *Client) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.rdb.LRange(ctx, key, start, stop).Result()
}

// Incr increments a counter
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	start := time.Now()
	v, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		c.log.Info("redis_incr",
			zap.String("key", key),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
	}
	return v, err
}

// Get retrieves a string value
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.rdb.Get(ctx, key).Result()
}
