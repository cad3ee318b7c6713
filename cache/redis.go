// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces keys written by RedisCache.
const DefaultPrefix = "absorb:seq:"

// RedisCache stores sequences in Redis.
type RedisCache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a RedisCache.
type Option func(*RedisCache)

// WithTTL sets the expiration of stored entries. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *RedisCache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *RedisCache) {
		c.prefix = prefix
	}
}

// NewRedisCache connects to the server at address.
func NewRedisCache(address, password string, db int, opts ...Option) *RedisCache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	return NewRedisCacheFromClient(rdb, opts...)
}

// NewRedisCacheFromClient wraps an existing client. Close closes the client.
func NewRedisCacheFromClient(client *backend.Client, opts ...Option) *RedisCache {
	c := &RedisCache{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	return nil
}

// Get loads a sequence. A missing key is a miss, not an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]*big.Int, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: redis get: %w", err)
	}
	seq, err := Decode(val)
	if err != nil {
		return nil, false, err
	}

	return seq, true, nil
}

// Set stores seq with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, seq []*big.Int) error {
	data, err := Encode(seq)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}

	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

var _ Cache = (*RedisCache)(nil)
