// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"math/big"
	"sync"
)

// MemoryCache keeps encoded sequences in a map. Entries never expire.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCache returns an empty process-local cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

// Get returns a fresh copy of the stored sequence.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]*big.Int, bool, error) {
	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	seq, err := Decode(data)
	if err != nil {
		return nil, false, err
	}

	return seq, true, nil
}

// Set stores seq under key, replacing any previous value.
func (c *MemoryCache) Set(ctx context.Context, key string, seq []*big.Int) error {
	data, err := Encode(seq)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = data
	c.mu.Unlock()

	return nil
}

// Len returns the number of stored entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string][]byte)
	c.mu.Unlock()

	return nil
}

var _ Cache = (*MemoryCache)(nil)
