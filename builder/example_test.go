// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/absorb/absorption"
	"github.com/katalvlaran/absorb/builder"
)

// ExampleRuin builds a biased gambler's ruin walk on 0..3 and solves it from
// state 1.
func ExampleRuin() {
	c, err := builder.BuildChain(4, nil, builder.Ruin(2, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := absorption.Solve(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Sequence())
	// Output: [3 4 7]
}
