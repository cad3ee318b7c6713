// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/absorb/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if MustAt(t, m, i, j).Sign() != 0 {
						t.Fatalf("element [%d,%d] of a new Dense must be 0", i, j)
					}
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		err = m.Set(idx[0], idx[1], big.NewRat(1, 1))
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilValue)
}

// TestDense_ValueSemantics ensures neither At nor Set leaks internal pointers.
func TestDense_ValueSemantics(t *testing.T) {
	m := MustDense(t, 1, 1)
	v := big.NewRat(1, 3)
	require.NoError(t, m.Set(0, 0, v))

	v.SetInt64(42) // mutate caller copy
	require.Equal(t, "1/3", MustAt(t, m, 0, 0).RatString())

	got := MustAt(t, m, 0, 0)
	got.SetInt64(7) // mutate returned copy
	require.Equal(t, "1/3", MustAt(t, m, 0, 0).RatString())
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustRats(t, []string{"1/2", "0"}, []string{"0", "2"})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, big.NewRat(9, 1)))
	require.Equal(t, "1/2", MustAt(t, m, 0, 0).RatString())
	require.Equal(t, "9", MustAt(t, c, 0, 0).RatString())
}

func TestNewFromRows_Errors(t *testing.T) {
	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]*big.Rat{{big.NewRat(1, 1)}, {}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows([][]*big.Rat{{nil}})
	require.ErrorIs(t, err, matrix.ErrNilValue)

	_, err = matrix.NewFromInt64s([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestDense_RowAndString(t *testing.T) {
	m, err := matrix.NewFromInt64s([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 2)
	require.Equal(t, "3", row[0].RatString())
	require.Equal(t, "4", row[1].RatString())

	_, err = m.Row(2)
	require.True(t, errors.Is(err, matrix.ErrOutOfRange))

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			require.Zero(t, MustAt(t, id, i, j).Cmp(big.NewRat(want, 1)), "I[%d,%d]", i, j)
		}
	}
	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
