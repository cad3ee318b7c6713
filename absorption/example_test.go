// SPDX-License-Identifier: MIT

package absorption_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/absorb/absorption"
	"github.com/katalvlaran/absorb/chain"
)

// ExampleCalculate prints numerators for absorbing states 4, 5, 6 followed
// by the common denominator.
func ExampleCalculate() {
	seq, err := absorption.Calculate([][]int64{
		{0, 6, 0, 0, 0, 3, 0},
		{3, 0, 5, 1, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 0},
		{0, 3, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(seq)
	// Output:
	// [0 7 2 9]
}

// ExampleSolve_unreachable shows the named failure for an ill-posed chain.
func ExampleSolve_unreachable() {
	c, _ := chain.FromInts([][]int{
		{0, 1, 1},
		{0, 1, 0}, // state 1 loops forever
		{0, 0, 0},
	})
	_, err := absorption.Solve(c)
	fmt.Println(errors.Is(err, absorption.ErrUnreachableAbsorption))
	fmt.Println(err)
	// Output:
	// true
	// absorption: some transient state cannot reach any absorbing state: states [1]
}
