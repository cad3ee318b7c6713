// SPDX-License-Identifier: MIT

package dfs

import "fmt"

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over every state when
// WithFullTraversal is given (start is then ignored). On error the partial
// result is returned with Order cleared.
func DFS(g Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.Order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}

	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make([]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := walker.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits id at depth, then recurses into unvisited successors.
func (w *dfsWalker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		w.res.Order = nil
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	for _, nid := range w.graph.Successors(id) {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
