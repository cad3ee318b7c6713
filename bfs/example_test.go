// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/absorb/bfs"
	"github.com/katalvlaran/absorb/chain"
)

// ExampleMultiBFS finds every state that can eventually reach absorption by
// searching backwards from the absorbing states.
func ExampleMultiBFS() {
	c, _ := chain.FromInts([][]int{
		{0, 6, 0, 0, 0, 3, 0},
		{3, 0, 5, 1, 0, 1, 1},
		{0, 1, 0, 0, 0, 0, 0},
		{0, 3, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
	})
	absorbing := chain.Classify(c).Absorbing

	res, err := bfs.MultiBFS(c.Reverse(), absorbing)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(2)
	fmt.Println(path)
	// Output:
	// [4 5 6 0 1 2 3]
	// [5 1 2]
}
