// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over index-addressed directed
// graphs, returning hop distances, parent links, and visit order.
//
// What
//
//   - Graph is the minimal surface a traversal needs: Order() states numbered
//     0..Order()-1 and Successors(i) in a deterministic order. chain.Chain and
//     its Reverse view both satisfy it.
//   - BFS explores from one start state; MultiBFS seeds the frontier with
//     several states at depth 0 (used to compute "which states can reach any
//     absorbing state" in one pass over the reversed chain).
//   - Result contains:
//   - Order: visit sequence
//   - Depth: state → distance (edges) from the nearest start
//   - Parent: state → its predecessor in the BFS forest
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//
// Determinism
//
//	Starts are enqueued in the order given and successors in the order the
//	Graph returns them, so the visit sequence is fully reproducible.
//
// Complexity (V = Order(), E = total successors)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.MultiBFS(c.Reverse(), absorbing)
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, ctx error or hook error
//	}
//	if !res.Reached(s) { /* s cannot reach any absorbing state */ }
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn): skip edges for which fn(curr, neighbor) == false.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): hooks.
package bfs
