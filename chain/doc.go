// SPDX-License-Identifier: MIT

// Package chain models a finite Markov chain given by non-negative integer
// edge weights and classifies its states.
//
// What
//
//   - Chain: an immutable n×n weight matrix, W[i][j] ≥ 0 is the weight of i→j.
//     Row i is normalised by its row sum to give transition probabilities.
//   - Classify: splits state indices into transient (row sum > 0) and
//     absorbing (row sum == 0), both in increasing index order.
//   - Chain and its Reverse view satisfy bfs.Graph, so reachability questions
//     ("can every transient state reach absorption?") are plain traversals.
//
// Validation
//
//	New rejects empty, ragged, non-square and negative-weight input with an
//	error matching ErrInvalidChain (and the specific cause: ErrEmptyChain,
//	ErrNonSquare, ErrNegativeWeight). Loaders that parse text use
//	ErrNonIntegerWeight for fractional or out-of-range values.
//
// Self-loops
//
//	W[i][i] > 0 is allowed, counts toward the row sum, and makes i transient
//	even when it is the only positive entry in the row.
package chain
