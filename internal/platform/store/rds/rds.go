// Package rds provides a redis client over go-redis v9
package rds

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client wraps *redis.Client with the small surface the store exposes
type Client struct {
	c *redis.Client
}

// Open dials and pings redis
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("rds: empty addr")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{c: c}, nil
}

// Wrap adopts an existing client
func Wrap(c *redis.Client) *Client { return &Client{c: c} }

// Get returns the value at key, ok is false when the key does not exist
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores val at key, ttl 0 keeps it forever
func (c *Client) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return c.c.Set(ctx, key, val, ttl).Err()
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error { return c.c.Ping(ctx).Err() }

// Close releases the pool
func (c *Client) Close() error {
	if c == nil || c.c == nil {
		return nil
	}
	return c.c.Close()
}
