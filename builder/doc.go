// SPDX-License-Identifier: MIT

// Package builder generates weighted Markov chains for tests, benchmarks and
// the `absorb generate` command.
//
// A chain is assembled by BuildChain from one or more Constructors applied in
// order to an n×n weight draft. Constructors only write rows of states that
// are not marked absorbing, so the absorbing set chosen with WithAbsorbing
// (default: the last state) always ends up with zero rows.
//
//	c, err := builder.BuildChain(6,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithAbsorbing(0, 5)},
//		builder.RandomSparse(0.4),
//		builder.Exits(),
//	)
//
// Stochastic constructors (RandomSparse, RandomDAG with 0 < p < 1) require a
// random source set with WithSeed or WithRand and fail with ErrNeedRandSource
// otherwise. Given the same seed, the same constructors produce the same
// chain.
package builder
