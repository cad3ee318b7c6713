// SPDX-License-Identifier: MIT

// Package cache stores solved absorption sequences keyed by a digest of the
// chain and the start state. Values are the flat sequence [n_0, …, D]
// encoded as a JSON array of decimal strings, so they survive any backend
// without precision loss.
//
// Three implementations are provided: NullCache (disabled), MemoryCache
// (process-local) and RedisCache (shared, with key prefix and TTL).
package cache
