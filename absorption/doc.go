// SPDX-License-Identifier: MIT

// Package absorption computes exact absorption probabilities of finite
// Markov chains.
//
// What
//
//	Given a chain.Chain, Solve returns, for the start state (by default the
//	first transient state), the exact probability of eventually being
//	absorbed into each absorbing state. The answer is a list of integer
//	numerators over one common denominator: the least common multiple of the
//	reduced per-state denominators.
//
// How
//
//  1. Classify states (chain.Classify). No transient states → trivial [1].
//  2. Check that every transient state can reach some absorbing state by a
//     multi-source BFS over the reversed chain (bfs.MultiBFS). States that
//     cannot are reported in an *UnreachableError.
//  3. If the chain is acyclic (dfs.TopologicalSort succeeds), fill B by
//     back-substitution in reverse topological order. Otherwise build Q
//     (transient→transient) and R (transient→absorbing) with exact
//     row-normalised rationals and solve (I − Q)·B = R with matrix.Solve.
//     A singular system is reported as ErrUnreachableAbsorption as well,
//     which covers callers that disable step 2.
//  4. Normalise the start row of B over the LCM of its denominators.
//
// Output contract
//
//	Result.Sequence() returns [n_0, …, n_{k−1}, D] for k absorbing states in
//	increasing index order, or exactly [1] when there are no transient states.
//	Calculate is the one-call form over raw weights.
//
// Errors
//
//   - ErrInvalidChain (alias of chain.ErrInvalidChain): malformed weights.
//   - ErrUnreachableAbsorption: some transient state never reaches absorption.
//   - ErrStartNotTransient: WithStart named an absorbing or unknown state.
//
// Concurrency
//
//	Every function here is pure. Distinct chains may be solved concurrently
//	without coordination; see package batch.
package absorption
