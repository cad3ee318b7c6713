// SPDX-License-Identifier: MIT
package chain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/absorb/chain"
)

// reference is the seven-state demonstration chain.
var reference = [][]int{
	{0, 6, 0, 0, 0, 3, 0},
	{3, 0, 5, 1, 0, 1, 1},
	{0, 1, 0, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		in    [][]int64
		cause error
	}{
		{"empty", nil, chain.ErrEmptyChain},
		{"ragged", [][]int64{{0, 1}, {0}}, chain.ErrNonSquare},
		{"wide", [][]int64{{0, 1, 2}, {0, 0, 0}}, chain.ErrNonSquare},
		{"negative", [][]int64{{0, -1}, {0, 0}}, chain.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chain.New(tc.in)
			require.ErrorIs(t, err, chain.ErrInvalidChain)
			require.ErrorIs(t, err, tc.cause)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := [][]int64{{0, 2}, {0, 0}}
	c, err := chain.New(in)
	require.NoError(t, err)
	in[0][1] = 99
	assert.Equal(t, int64(2), c.Weight(0, 1))

	out := c.Weights()
	out[0][1] = 77
	assert.Equal(t, int64(2), c.Weight(0, 1))
}

func TestClassify_Reference(t *testing.T) {
	c, err := chain.FromInts(reference)
	require.NoError(t, err)

	cl := chain.Classify(c)
	assert.Equal(t, []int{0, 1, 2, 3}, cl.Transient)
	assert.Equal(t, []int{4, 5, 6}, cl.Absorbing)
	assert.False(t, cl.IsTrivial())

	pos, transient := cl.Positions()
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2}, pos)
	assert.Equal(t, []bool{true, true, true, true, false, false, false}, transient)
}

func TestClassify_EdgeCases(t *testing.T) {
	// all-zero: every state absorbing
	c, err := chain.New([][]int64{{0, 0}, {0, 0}})
	require.NoError(t, err)
	cl := chain.Classify(c)
	assert.Empty(t, cl.Transient)
	assert.Equal(t, []int{0, 1}, cl.Absorbing)
	assert.True(t, cl.IsTrivial())

	// self-loop only row is transient
	c, err = chain.New([][]int64{{0, 1, 0}, {0, 5, 0}, {0, 0, 0}})
	require.NoError(t, err)
	cl = chain.Classify(c)
	assert.Equal(t, []int{0, 1}, cl.Transient)
	assert.Equal(t, []int{2}, cl.Absorbing)
}

func TestRowSumAndProbability(t *testing.T) {
	c, err := chain.FromInts(reference)
	require.NoError(t, err)

	assert.Equal(t, "9", c.RowSum(0).String())
	assert.Equal(t, "11", c.RowSum(1).String())

	p, ok := c.Probability(0, 1)
	require.True(t, ok)
	assert.Equal(t, "2/3", p.RatString())

	_, ok = c.Probability(4, 0)
	assert.False(t, ok, "absorbing row has no probabilities")

	// large weights do not overflow the row sum
	wide, err := chain.New([][]int64{{math.MaxInt64, math.MaxInt64}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551614", wide.RowSum(0).String())
}

func TestSuccessorsAndReverse(t *testing.T) {
	c, err := chain.FromInts(reference)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3, 5, 6}, c.Successors(1))
	assert.Empty(t, c.Successors(4))

	r := c.Reverse()
	assert.Equal(t, 7, r.Order())
	assert.Equal(t, []int{0, 1}, r.Successors(5))
	assert.Equal(t, []int{0, 2, 3}, r.Successors(1))
	assert.Empty(t, r.Successors(4))
}

func TestScale(t *testing.T) {
	c, err := chain.FromInts(reference)
	require.NoError(t, err)

	s, err := c.Scale(1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(15), s.Weight(1, 2))
	assert.Equal(t, int64(5), c.Weight(1, 2), "original untouched")

	_, err = c.Scale(1, 0)
	assert.ErrorIs(t, err, chain.ErrInvalidChain)
	_, err = c.Scale(9, 2)
	assert.ErrorIs(t, err, chain.ErrStateOutOfRange)

	huge, err := chain.New([][]int64{{0, math.MaxInt64}, {0, 0}})
	require.NoError(t, err)
	_, err = huge.Scale(0, 2)
	assert.ErrorIs(t, err, chain.ErrNonIntegerWeight)
}
