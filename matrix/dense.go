// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete row-major implementation of Matrix,
// storing *big.Rat elements in a flat slice.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact rationals.
// r is rows, c is columns, and data holds r*c non-nil elements in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c, never nil entries
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice with one zero Rat per cell.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice; every cell owns its own Rat.
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// NewFromRows builds a Dense from row slices, copying every value.
// Returns ErrInvalidDimensions for an empty input, ErrRaggedRows when rows
// differ in length and ErrNilValue for a nil element.
// Complexity: O(r*c).
func NewFromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] == nil {
				return nil, denseErrorf("Set", i, j, ErrNilValue)
			}
			m.data[i*c+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// NewFromInt64s builds a Dense with integer entries.
// Same validation as NewFromRows.
func NewFromInt64s(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j := 0; j < c; j++ {
			m.data[i*c+j].SetInt64(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
// Complexity: O(1) plus the cost of copying the rational.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilValue)
	}
	m.data[idx].Set(v)

	return nil
}

// Row returns a copy of row i as a fresh slice.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]*big.Rat, m.c)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Rat).Set(m.data[base+j])
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer; rationals print as "a/b", integers as "a".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// toDense returns m itself when it is already *Dense, otherwise a Dense copy
// read through the interface. Kernels work on *Dense internally.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v *big.Rat
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if v == nil {
				return nil, denseErrorf("At", i, j, ErrNilValue)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
