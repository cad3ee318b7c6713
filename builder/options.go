// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption configures a BuildChain call.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng       *rand.Rand
	weightFn  WeightFn
	absorbing []int // nil selects the last state
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r for every random draw. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn draws edge weights from fn. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithAbsorbing marks states whose rows constructors leave empty.
// Duplicates are ignored; range is checked by BuildChain.
func WithAbsorbing(states ...int) BuilderOption {
	cp := append([]int{}, states...)

	return func(c *builderConfig) {
		c.absorbing = cp
	}
}

func (c builderConfig) absorbingMask(n int) ([]bool, error) {
	mask := make([]bool, n)
	if c.absorbing == nil {
		mask[n-1] = true
		return mask, nil
	}
	for _, s := range c.absorbing {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("WithAbsorbing: state %d not in [0,%d): %w", s, n, ErrOptionViolation)
		}
		mask[s] = true
	}

	return mask, nil
}

func (c builderConfig) weight(method string) (int64, error) {
	w := c.weightFn(c.rng)
	if w <= 0 {
		return 0, fmt.Errorf("%s: weight %d: %w", method, w, ErrInvalidWeight)
	}

	return w, nil
}
