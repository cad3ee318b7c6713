// SPDX-License-Identifier: MIT

package builder

import "errors"

// Callers branch with errors.Is; messages carry the constructor name and
// offending values.
var (
	// ErrTooFewStates indicates a size parameter is below a constructor's minimum.
	ErrTooFewStates = errors.New("builder: too few states")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without a random source.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrInvalidWeight indicates a weight function or parameter produced a
	// non-positive weight.
	ErrInvalidWeight = errors.New("builder: weight must be positive")

	// ErrOptionViolation indicates an option value incompatible with the chain size.
	ErrOptionViolation = errors.New("builder: invalid option value")

	// ErrConstructFailed indicates a nil constructor was passed to BuildChain.
	ErrConstructFailed = errors.New("builder: construction failed")
)
