// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/absorb/matrix"
)

// ExampleSolve solves a 2×2 system exactly; no rounding appears in the output.
func ExampleSolve() {
	a, _ := matrix.NewFromRows([][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(-1, 3)},
		{big.NewRat(-1, 2), big.NewRat(1, 1)},
	})
	b, _ := matrix.NewFromInt64s([][]int64{{1}, {0}})

	x, err := matrix.Solve(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(x)
	// Output:
	// [6/5]
	// [3/5]
}
