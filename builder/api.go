// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/absorb/chain"
)

// Method names used in error messages and by the generate command.
const (
	MethodRuin         = "ruin"
	MethodCycle        = "cycle"
	MethodComplete     = "complete"
	MethodExits        = "exits"
	MethodRandomSparse = "sparse"
	MethodRandomDAG    = "dag"
)

// Constructor writes edges into a draft.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft is the weight matrix under construction.
type Draft struct {
	w         [][]int64
	absorbing []bool
}

// Order returns the number of states.
func (d *Draft) Order() int { return len(d.w) }

// Absorbing reports whether state i is marked absorbing.
func (d *Draft) Absorbing(i int) bool { return d.absorbing[i] }

// add accumulates w on i→j unless i is absorbing.
func (d *Draft) add(i, j int, w int64) {
	if d.absorbing[i] {
		return
	}
	d.w[i][j] += w
}

func (d *Draft) transient() []int {
	var out []int
	for i, a := range d.absorbing {
		if !a {
			out = append(out, i)
		}
	}

	return out
}

// BuildChain applies cons in order to an empty n-state draft and returns the
// resulting chain.
func BuildChain(n int, bopts []BuilderOption, cons ...Constructor) (*chain.Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildChain: n=%d < 1: %w", n, ErrTooFewStates)
	}
	cfg := newBuilderConfig(bopts...)
	mask, err := cfg.absorbingMask(n)
	if err != nil {
		return nil, fmt.Errorf("BuildChain: %w", err)
	}

	d := &Draft{w: make([][]int64, n), absorbing: mask}
	for i := range d.w {
		d.w[i] = make([]int64, n)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildChain: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildChain: %w", err)
		}
	}

	c, err := chain.New(d.w)
	if err != nil {
		return nil, fmt.Errorf("BuildChain: %w", err)
	}

	return c, nil
}
