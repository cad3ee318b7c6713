// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx    context.Context
	filter func(curr, neighbor int) bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil ctx has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEdgeFilter restricts the sort to edges for which fn returns true.
func WithEdgeFilter(fn func(curr, neighbor int) bool) TopoOption {
	return func(o *topoOptions) {
		o.filter = fn
	}
}

type topoSorter struct {
	graph Graph
	opts  topoOptions
	state []int
	order []int
}

// TopologicalSort returns every state of g ordered so that each edge u→v
// has u before v. Roots are tried in index order, so the result is
// deterministic.
//
// Errors: ErrGraphNil, ErrCycleDetected (wrapped with the state closing the
// cycle), ctx errors.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	n := g.Order()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

func (t *topoSorter) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: at state %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	for _, next := range t.graph.Successors(id) {
		if t.opts.filter != nil && !t.opts.filter(id, next) {
			continue
		}
		if err := t.visit(next); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
