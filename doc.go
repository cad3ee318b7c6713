// SPDX-License-Identifier: MIT

// Package absorb computes exact absorption probabilities of finite Markov
// chains given as non-negative integer edge weights.
//
// The answer for a start state is a flat sequence [n_0, …, n_{k−1}, D]: one
// numerator per absorbing state in index order over a common denominator D,
// or [1] when the chain has no transient states. Nothing is ever rounded.
//
// Packages:
//
//	chain/        immutable weight matrix, row sums, transient/absorbing classification
//	matrix/       dense *big.Rat matrices and exact Gauss–Jordan solving
//	bfs/, dfs/    traversals over chains (reachability, topological order)
//	absorption/   the solver: Calculate, Solve, SolveAll
//	chainfile/    JSON, YAML and TOML chain documents
//	builder/      seeded chain generators
//	cache/        result caches (memory, Redis)
//	batch/        concurrent solving with Prometheus metrics
//	server/       HTTP API
//
// The absorb command in cmd/absorb wraps all of the above:
//
//	absorb solve chain.yaml
//	absorb solve --all --format json chain.toml
//	absorb batch --redis localhost:6379 chains/*.json
//	absorb generate sparse -n 8 --seed 3 -o random.yaml
//	absorb serve --addr :8080
package absorb
