// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rational values.
//
// Implementations must honour value semantics: At returns a copy and Set
// stores a copy, so no *big.Rat is ever shared between a matrix and its caller.
//
// Complexity notes: Rows/Cols/At/Set are O(1) rational copies; Clone is O(r*c).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (*big.Rat, error)

	// Set stores a copy of v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrNilValue for v == nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
