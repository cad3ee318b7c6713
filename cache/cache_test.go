// SPDX-License-Identifier: MIT

package cache_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/absorb/cache"
	"github.com/katalvlaran/absorb/chain"
)

func seq(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

func strs(s []*big.Int) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.String()
	}
	return out
}

func TestKey(t *testing.T) {
	a, err := chain.New([][]int64{{0, 1}, {0, 0}})
	require.NoError(t, err)
	b, err := chain.New([][]int64{{0, 2}, {0, 0}})
	require.NoError(t, err)
	a2, err := chain.New([][]int64{{0, 1}, {0, 0}})
	require.NoError(t, err)

	require.Len(t, cache.Key(a, -1), 64)
	require.Equal(t, cache.Key(a, -1), cache.Key(a2, -1))
	require.NotEqual(t, cache.Key(a, -1), cache.Key(b, -1))
	require.NotEqual(t, cache.Key(a, -1), cache.Key(a, 0))
}

func TestCodec(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	data, err := cache.Encode([]*big.Int{big.NewInt(7), huge})
	require.NoError(t, err)
	require.JSONEq(t, `["7","123456789012345678901234567890"]`, string(data))

	got, err := cache.Decode(data)
	require.NoError(t, err)
	require.Equal(t, []string{"7", "123456789012345678901234567890"}, strs(got))

	for _, bad := range []string{`{`, `[]`, `["x"]`, `["-1"]`, `[1]`} {
		_, err := cache.Decode([]byte(bad))
		require.ErrorIs(t, err, cache.ErrCorrupt, bad)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNullCache()
	require.NoError(t, c.Set(ctx, "k", seq(1)))
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, c.Close())
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	stored := seq(0, 7, 2, 9)
	require.NoError(t, c.Set(ctx, "k", stored))
	stored[0].SetInt64(100)

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"0", "7", "2", "9"}, strs(got))
	require.Equal(t, 1, c.Len())

	require.NoError(t, c.Close())
	require.Zero(t, c.Len())
}

func newRedis(t *testing.T, opts ...cache.Option) (*miniredis.Miniredis, *cache.RedisCache) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	c := cache.NewRedisCacheFromClient(client, opts...)
	t.Cleanup(func() { _ = c.Close() })
	return mr, c
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedis(t)
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "abc", seq(3, 1, 4)))
	require.True(t, mr.Exists(cache.DefaultPrefix+"abc"))

	got, ok, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"3", "1", "4"}, strs(got))
}

func TestRedisCacheTTL(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedis(t, cache.WithPrefix("test:"), cache.WithTTL(time.Minute))

	require.NoError(t, c.Set(ctx, "k", seq(1)))
	require.True(t, mr.Exists("test:k"))
	require.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisCacheCorrupt(t *testing.T) {
	ctx := context.Background()
	mr, c := newRedis(t)
	require.NoError(t, mr.Set(cache.DefaultPrefix+"bad", "not json"))

	_, ok, err := c.Get(ctx, "bad")
	require.ErrorIs(t, err, cache.ErrCorrupt)
	require.False(t, ok)
}
