// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"
	"math"
	"math/big"
)

// Chain is an immutable square weight matrix. The zero value is not usable;
// build chains with New or FromInts.
type Chain struct {
	n int
	w []int64 // row-major, len == n*n
}

// invalid wraps a specific cause under ErrInvalidChain with positional context.
func invalid(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidChain, cause, fmt.Sprintf(format, args...))
}

// New validates weights and returns a Chain holding a private copy of them.
//
// Errors (all matching ErrInvalidChain):
//   - ErrEmptyChain     when len(weights) == 0.
//   - ErrNonSquare      when some row length != len(weights).
//   - ErrNegativeWeight when some entry is < 0.
//
// Complexity: O(n²).
func New(weights [][]int64) (*Chain, error) {
	n := len(weights)
	if n == 0 {
		return nil, invalid(ErrEmptyChain, "0 rows")
	}
	c := &Chain{n: n, w: make([]int64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, invalid(ErrNonSquare, "row %d has %d entries, want %d", i, len(weights[i]), n)
		}
		for j = 0; j < n; j++ {
			if weights[i][j] < 0 {
				return nil, invalid(ErrNegativeWeight, "W[%d][%d] = %d", i, j, weights[i][j])
			}
			c.w[i*n+j] = weights[i][j]
		}
	}

	return c, nil
}

// FromInts is New for int-typed input.
func FromInts(weights [][]int) (*Chain, error) {
	conv := make([][]int64, len(weights))
	for i, row := range weights {
		conv[i] = make([]int64, len(row))
		for j, v := range row {
			conv[i][j] = int64(v)
		}
	}

	return New(conv)
}

// Order returns the number of states n.
func (c *Chain) Order() int { return c.n }

// Weight returns W[i][j]. Indices must be in range; use Valid to check first.
func (c *Chain) Weight(i, j int) int64 { return c.w[i*c.n+j] }

// Valid reports whether i is a state index of c.
func (c *Chain) Valid(i int) bool { return i >= 0 && i < c.n }

// CheckState returns ErrStateOutOfRange when i is not a state of c.
func (c *Chain) CheckState(i int) error {
	if !c.Valid(i) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStateOutOfRange, i, c.n)
	}

	return nil
}

// Weights returns a fresh copy of the weight matrix.
func (c *Chain) Weights() [][]int64 {
	out := make([][]int64, c.n)
	for i := range out {
		out[i] = make([]int64, c.n)
		copy(out[i], c.w[i*c.n:(i+1)*c.n])
	}

	return out
}

// RowSum returns sum(W[i][:]) as a big.Int; it cannot overflow.
func (c *Chain) RowSum(i int) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	base := i * c.n
	for j := 0; j < c.n; j++ {
		if v := c.w[base+j]; v != 0 {
			sum.Add(sum, tmp.SetInt64(v))
		}
	}

	return sum
}

// Probability returns W[i][j] / RowSum(i) as a reduced rational.
// A zero row sum yields ok == false instead of a division by zero.
func (c *Chain) Probability(i, j int) (p *big.Rat, ok bool) {
	sum := c.RowSum(i)
	if sum.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).SetFrac(big.NewInt(c.Weight(i, j)), sum), true
}

// Successors lists states j with W[i][j] > 0 in increasing order.
func (c *Chain) Successors(i int) []int {
	out := make([]int, 0, 4)
	base := i * c.n
	for j := 0; j < c.n; j++ {
		if c.w[base+j] > 0 {
			out = append(out, j)
		}
	}

	return out
}

// Scale returns a copy of c with row i multiplied by factor (factor > 0).
// Scaling a row never changes its transition probabilities.
func (c *Chain) Scale(i int, factor int64) (*Chain, error) {
	if err := c.CheckState(i); err != nil {
		return nil, err
	}
	if factor <= 0 {
		return nil, invalid(ErrNegativeWeight, "scale factor %d", factor)
	}
	out := &Chain{n: c.n, w: make([]int64, len(c.w))}
	copy(out.w, c.w)
	for j := 0; j < c.n; j++ {
		if out.w[i*c.n+j] > math.MaxInt64/factor {
			return nil, invalid(ErrNonIntegerWeight, "W[%d][%d]*%d overflows int64", i, j, factor)
		}
		out.w[i*c.n+j] *= factor
	}

	return out, nil
}

// Reversed is the transposed view of a chain: its successors are the
// original chain's predecessors.
type Reversed struct{ c *Chain }

// Reverse returns the transposed view of c. It shares c's storage.
func (c *Chain) Reverse() Reversed { return Reversed{c: c} }

// Order returns the number of states.
func (r Reversed) Order() int { return r.c.n }

// Successors lists states j with W[j][i] > 0 in increasing order.
func (r Reversed) Successors(i int) []int {
	out := make([]int, 0, 4)
	for j := 0; j < r.c.n; j++ {
		if r.c.w[j*r.c.n+i] > 0 {
			out = append(out, j)
		}
	}

	return out
}
