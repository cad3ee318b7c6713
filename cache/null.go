// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"math/big"
)

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a disabled cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses.
func (c *NullCache) Get(ctx context.Context, key string) ([]*big.Int, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, seq []*big.Int) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
