// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Keep rational literals readable ("1/3") in table-driven tests.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/absorb/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the interface path.
type hide struct{ matrix.Matrix }

// R parses a rational literal such as "3", "-2/7" or "0" or fails the test.
func R(t *testing.T, s string) *big.Rat {
	t.Helper()
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		t.Fatalf("bad rational literal %q", s)
	}

	return v
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRats builds a *Dense from rows of rational literals.
func MustRats(t *testing.T, rows ...[]string) *matrix.Dense {
	t.Helper()
	data := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		data[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			data[i][j] = R(t, s)
		}
	}
	m, err := matrix.NewFromRows(data)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *big.Rat {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}
