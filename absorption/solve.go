// SPDX-License-Identifier: MIT

package absorption

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/absorb/bfs"
	"github.com/katalvlaran/absorb/chain"
	"github.com/katalvlaran/absorb/dfs"
	"github.com/katalvlaran/absorb/matrix"
)

// Calculate validates weights, solves for the first transient state and
// returns the flat sequence [n_0, …, n_{k−1}, D], or [1] when there are no
// transient states.
//
// Errors: ErrInvalidChain, ErrUnreachableAbsorption.
func Calculate(weights [][]int64) ([]*big.Int, error) {
	c, err := chain.New(weights)
	if err != nil {
		return nil, err
	}
	res, err := Solve(c)
	if err != nil {
		return nil, err
	}

	return res.Sequence(), nil
}

// Solve returns the exact absorption distribution of the start state of c.
//
// Implementation:
//   - Stage 1: classify; short-circuit the trivial case.
//   - Stage 2: resolve the start state, verify reachability (if enabled).
//   - Stage 3: solve (I − Q)·B = R, by back-substitution when the chain is
//     acyclic and by exact elimination otherwise; normalise the start row.
//
// Errors:
//   - ErrInvalidChain for a nil chain.
//   - ErrStartNotTransient for a bad WithStart.
//   - ErrUnreachableAbsorption (as *UnreachableError) for an ill-posed chain.
//
// Complexity: O(t²·(t+a)) rational operations for t transient and a
// absorbing states, plus O(n²) for classification and reachability.
func Solve(c *chain.Chain, opts ...Option) (*Result, error) {
	o := buildOptions(opts)
	sys, err := prepare(c, o)
	if err != nil {
		return nil, err
	}
	if sys.cl.IsTrivial() {
		return trivialResult(sys.cl), nil
	}

	row := 0
	if o.Start >= 0 {
		pos, transient := sys.cl.Positions()
		if !c.Valid(o.Start) || !transient[o.Start] {
			return nil, fmt.Errorf("%w: %d", ErrStartNotTransient, o.Start)
		}
		row = pos[o.Start]
	}

	b, err := sys.solve()
	if err != nil {
		return nil, err
	}

	return sys.result(b, row)
}

// SolveAll returns one Result per transient state, in transient order. Each
// row is normalised over its own common denominator. A chain with no
// transient states yields a single trivial Result. WithStart is ignored.
func SolveAll(c *chain.Chain, opts ...Option) ([]*Result, error) {
	o := buildOptions(opts)
	sys, err := prepare(c, o)
	if err != nil {
		return nil, err
	}
	if sys.cl.IsTrivial() {
		return []*Result{trivialResult(sys.cl)}, nil
	}

	b, err := sys.solve()
	if err != nil {
		return nil, err
	}
	out := make([]*Result, len(sys.cl.Transient))
	for k := range sys.cl.Transient {
		if out[k], err = sys.result(b, k); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// system carries a classified chain through the solve.
type system struct {
	c  *chain.Chain
	cl chain.Classification
	o  Options
}

// prepare classifies c and, unless disabled, rejects chains where some
// transient state cannot reach absorption.
func prepare(c *chain.Chain, o Options) (*system, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrInvalidChain)
	}
	sys := &system{c: c, cl: chain.Classify(c), o: o}
	if sys.cl.IsTrivial() {
		return sys, nil
	}
	if len(sys.cl.Absorbing) == 0 {
		return nil, &UnreachableError{States: append([]int(nil), sys.cl.Transient...)}
	}
	if o.CheckReachability {
		if err := sys.checkReachability(); err != nil {
			return nil, err
		}
	}

	return sys, nil
}

// checkReachability runs one multi-source BFS from all absorbing states over
// the reversed chain; any transient state left unvisited cannot be absorbed.
func (s *system) checkReachability() error {
	res, err := bfs.MultiBFS(s.c.Reverse(), s.cl.Absorbing)
	if err != nil {
		return fmt.Errorf("absorption: reachability: %w", err)
	}
	var stuck []int
	for _, t := range s.cl.Transient {
		if !res.Reached(t) {
			stuck = append(stuck, t)
		}
	}
	if len(stuck) > 0 {
		return &UnreachableError{States: stuck}
	}

	return nil
}

// build returns Q (t×t) and R (t×a) with W[i][j]/rowSum(i) entries.
func (s *system) build() (q, r *matrix.Dense, err error) {
	t, a := len(s.cl.Transient), len(s.cl.Absorbing)
	if q, err = matrix.NewDense(t, t); err != nil {
		return nil, nil, err
	}
	if r, err = matrix.NewDense(t, a); err != nil {
		return nil, nil, err
	}

	p := new(big.Rat)
	num := new(big.Int)
	for row, i := range s.cl.Transient {
		sum := s.c.RowSum(i)
		if sum.Sign() == 0 {
			return nil, nil, fmt.Errorf("%w: transient state %d has zero row sum", ErrInvalidChain, i)
		}
		for col, j := range s.cl.Transient {
			if w := s.c.Weight(i, j); w != 0 {
				if err = q.Set(row, col, p.SetFrac(num.SetInt64(w), sum)); err != nil {
					return nil, nil, err
				}
			}
		}
		for col, j := range s.cl.Absorbing {
			if w := s.c.Weight(i, j); w != 0 {
				if err = r.Set(row, col, p.SetFrac(num.SetInt64(w), sum)); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return q, r, nil
}

// solve returns B with (I − Q)·B = R.
func (s *system) solve() (*matrix.Dense, error) {
	if s.o.AcyclicShortcut {
		// edges into absorbing states never close a cycle, so the whole
		// chain sorts iff its transient part is acyclic
		order, err := dfs.TopologicalSort(s.c)
		if err == nil {
			return s.backSubstitute(order)
		}
		if !errors.Is(err, dfs.ErrCycleDetected) {
			return nil, fmt.Errorf("absorption: topological sort: %w", err)
		}
	}

	return s.eliminate()
}

// eliminate solves (I − Q)·B = R by Gauss–Jordan elimination.
func (s *system) eliminate() (*matrix.Dense, error) {
	q, r, err := s.build()
	if err != nil {
		return nil, fmt.Errorf("absorption: build: %w", err)
	}
	id, err := matrix.NewIdentity(q.Rows())
	if err != nil {
		return nil, fmt.Errorf("absorption: build: %w", err)
	}
	iq, err := matrix.Sub(id, q)
	if err != nil {
		return nil, fmt.Errorf("absorption: build: %w", err)
	}

	b, err := matrix.Solve(iq, r)
	if errors.Is(err, matrix.ErrSingular) {
		return nil, &UnreachableError{}
	}
	if err != nil {
		return nil, fmt.Errorf("absorption: solve: %w", err)
	}

	return b, nil
}

// backSubstitute fills B row by row in reverse topological order:
//
//	B[i][k] = (W[i][a_k] + Σ_j W[i][j]·B[j][k]) / rowSum(i),  j transient
//
// Every transient successor j of i comes later in order, so its row is
// already final.
func (s *system) backSubstitute(order []int) (*matrix.Dense, error) {
	t, a := len(s.cl.Transient), len(s.cl.Absorbing)
	b, err := matrix.NewDense(t, a)
	if err != nil {
		return nil, fmt.Errorf("absorption: build: %w", err)
	}
	pos, transient := s.cl.Positions()

	acc := make([]*big.Rat, a)
	for k := range acc {
		acc[k] = new(big.Rat)
	}
	w := new(big.Rat)
	for idx := len(order) - 1; idx >= 0; idx-- {
		i := order[idx]
		if !transient[i] {
			continue
		}
		for k := range acc {
			acc[k].SetInt64(0)
		}
		for _, j := range s.c.Successors(i) {
			w.SetInt64(s.c.Weight(i, j))
			if !transient[j] {
				acc[pos[j]].Add(acc[pos[j]], w)
				continue
			}
			row, err := b.Row(pos[j])
			if err != nil {
				return nil, fmt.Errorf("absorption: %w", err)
			}
			for k, v := range row {
				if v.Sign() != 0 {
					acc[k].Add(acc[k], new(big.Rat).Mul(w, v))
				}
			}
		}
		sum := new(big.Rat).SetInt(s.c.RowSum(i))
		for k := range acc {
			if err := b.Set(pos[i], k, acc[k].Quo(acc[k], sum)); err != nil {
				return nil, fmt.Errorf("absorption: %w", err)
			}
		}
	}

	return b, nil
}

// result normalises row k of B into a Result.
func (s *system) result(b *matrix.Dense, k int) (*Result, error) {
	row, err := b.Row(k)
	if err != nil {
		return nil, fmt.Errorf("absorption: %w", err)
	}
	nums, den := normalize(row)

	return &Result{
		Start:       s.cl.Transient[k],
		Transient:   s.cl.Transient,
		Absorbing:   s.cl.Absorbing,
		Numerators:  nums,
		Denominator: den,
	}, nil
}
