// SPDX-License-Identifier: MIT

package chain

import "errors"

// Sentinel errors for chain construction.
var (
	// ErrInvalidChain is the umbrella condition for malformed input. Every
	// construction failure matches it via errors.Is, together with one of the
	// specific causes below.
	ErrInvalidChain = errors.New("chain: invalid chain")

	// ErrEmptyChain is returned for a chain with no states.
	ErrEmptyChain = errors.New("chain: no states")

	// ErrNonSquare is returned when a row length differs from the number of rows.
	ErrNonSquare = errors.New("chain: weight matrix is not square")

	// ErrNegativeWeight is returned for any W[i][j] < 0.
	ErrNegativeWeight = errors.New("chain: negative weight")

	// ErrNonIntegerWeight is returned by decoders for fractional, non-numeric
	// or out-of-range weights.
	ErrNonIntegerWeight = errors.New("chain: non-integer weight")

	// ErrStateOutOfRange is returned when a state index is outside [0, n).
	ErrStateOutOfRange = errors.New("chain: state out of range")
)
