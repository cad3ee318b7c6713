// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search and topological sort over a
// directed graph of integer states.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, from one root or over the whole graph (forest). Supports
//     pre- and post-order hooks, cancellation, depth limiting and neighbor
//     filtering.
//   - TopologicalSort: orders states so that every edge u→v has u before v,
//     or returns ErrCycleDetected. Self-loops are cycles.
//
// Why:
//
//   - The absorption solver back-substitutes in reverse topological order
//     when the transient part of a chain is acyclic, skipping elimination.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph is nil
//   - ErrStartOutOfRange   start state outside [0, Order())
//   - ErrCycleDetected     TopologicalSort met a back edge
//   - context.Canceled     traversal canceled via context
//   - hook errors          propagated from OnVisit or OnExit
package dfs
