// SPDX-License-Identifier: MIT

package absorption

import (
	"math/big"

	"github.com/katalvlaran/absorb/chain"
)

// Result is the exact absorption distribution of one start state.
//
// For k absorbing states, Numerators has length k and Numerators[i] /
// Denominator is the probability of ending in Absorbing[i]. A trivial result
// (no transient states) has Start == -1, no numerators and Denominator == 1.
type Result struct {
	// Start is the state the distribution belongs to, -1 when trivial.
	Start int

	// Transient and Absorbing are the classification the result was derived from.
	Transient []int
	Absorbing []int

	Numerators  []*big.Int
	Denominator *big.Int
}

func trivialResult(cl chain.Classification) *Result {
	return &Result{
		Start:       -1,
		Transient:   cl.Transient,
		Absorbing:   cl.Absorbing,
		Denominator: big.NewInt(1),
	}
}

// Trivial reports whether the chain had no transient states.
func (r *Result) Trivial() bool { return r.Start < 0 }

// Sequence returns the flat presentation form [n_0, …, n_{k−1}, D], or [1]
// for a trivial result. The returned integers are copies.
func (r *Result) Sequence() []*big.Int {
	if r.Trivial() {
		return []*big.Int{big.NewInt(1)}
	}
	out := make([]*big.Int, 0, len(r.Numerators)+1)
	for _, n := range r.Numerators {
		out = append(out, new(big.Int).Set(n))
	}

	return append(out, new(big.Int).Set(r.Denominator))
}

// Strings returns Sequence as decimal strings.
func (r *Result) Strings() []string {
	seq := r.Sequence()
	out := make([]string, len(seq))
	for i, v := range seq {
		out[i] = v.String()
	}

	return out
}

// Probabilities returns Numerators[i]/Denominator as reduced rationals.
// A trivial result has none.
func (r *Result) Probabilities() []*big.Rat {
	out := make([]*big.Rat, len(r.Numerators))
	for i, n := range r.Numerators {
		out[i] = new(big.Rat).SetFrac(n, r.Denominator)
	}

	return out
}

// Probability returns the probability of absorption into state. ok is false
// when state is not one of the absorbing states of a non-trivial result.
func (r *Result) Probability(state int) (p *big.Rat, ok bool) {
	if r.Trivial() {
		return nil, false
	}
	for i, s := range r.Absorbing {
		if s == state {
			return new(big.Rat).SetFrac(r.Numerators[i], r.Denominator), true
		}
	}

	return nil, false
}

// Float64s approximates each probability for display. Never feed these back
// into a computation.
func (r *Result) Float64s() []float64 {
	probs := r.Probabilities()
	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i], _ = p.Float64()
	}

	return out
}

// normalize expresses a probability row over the LCM of its reduced
// denominators. big.Rat keeps values reduced, so Denom() is already minimal.
func normalize(row []*big.Rat) (nums []*big.Int, den *big.Int) {
	den = big.NewInt(1)
	gcd := new(big.Int)
	for _, p := range row {
		d := p.Denom()
		gcd.GCD(nil, nil, den, d)
		den.Mul(den, new(big.Int).Quo(d, gcd))
	}

	nums = make([]*big.Int, len(row))
	scale := new(big.Int)
	for i, p := range row {
		scale.Quo(den, p.Denom())
		nums[i] = new(big.Int).Mul(p.Num(), scale)
	}

	return nums, den
}
