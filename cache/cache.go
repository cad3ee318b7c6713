// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/katalvlaran/absorb/chain"
)

// Cache is a store of solved sequences. Implementations are safe for
// concurrent use. Get reports ok=false on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (seq []*big.Int, ok bool, err error)
	Set(ctx context.Context, key string, seq []*big.Int) error
	Close() error
}

// Key digests the order, every weight and the start state of a solve.
// Pass -1 for the default start.
func Key(c *chain.Chain, start int) string {
	h := sha256.New()
	var buf [8]byte
	put := func(v int64) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	n := c.Order()
	put(int64(n))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			put(c.Weight(i, j))
		}
	}
	put(int64(start))

	return hex.EncodeToString(h.Sum(nil))
}

// Encode renders seq as a JSON array of decimal strings.
func Encode(seq []*big.Int) ([]byte, error) {
	out := make([]string, len(seq))
	for i, v := range seq {
		if v == nil {
			return nil, fmt.Errorf("cache: encode: nil element %d", i)
		}
		out[i] = v.String()
	}

	return json.Marshal(out)
}

// Decode parses the output of Encode.
func Decode(data []byte) ([]*big.Int, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrCorrupt)
	}
	seq := make([]*big.Int, len(raw))
	for i, s := range raw {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok || v.Sign() < 0 {
			return nil, fmt.Errorf("%w: element %d: %q", ErrCorrupt, i, s)
		}
		seq[i] = v
	}

	return seq, nil
}
