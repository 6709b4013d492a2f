// Package dfs implements depth-first search over the one-rings of a mesh.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Components(g): connected-component labels of the vertex set
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/mesh"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph RingGraph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every component; otherwise it starts only from start.
// Returns DFSResult or an error if aborted by context, hook or ring failure.
func DFS(g RingGraph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d of %d", ErrStartVertexNotFound, start, n)
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

// traverse visits v at the given depth and recurses into its ring.
func (w *dfsWalker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// Each frame owns its ring; the recursion would overwrite a shared buffer.
	ring, err := w.graph.Ring(nil, v, mesh.Open)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("%w: ring of %d: %w", ErrNeighbors, v, err)
	}

	for _, nb := range ring {
		if nb < 0 || nb >= len(w.res.Visited) {
			w.res.Order = nil

			return fmt.Errorf("%w: ring of %d names vertex %d", ErrNeighbors, v, nb)
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if !w.res.Visited[nb] {
			w.res.Parent[nb] = v
			if err = w.traverse(nb, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	w.res.Order = append(w.res.Order, v)

	return nil
}

// Components labels every vertex with the index of its connected component,
// numbered in order of their lowest vertex id, and returns the count.
// Isolated vertices form components of their own.
func Components(g RingGraph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	labels := make([]int, g.VertexCount())
	count, open := 0, 0
	_, err := DFS(g, 0,
		WithFullTraversal(),
		WithOnVisit(func(v int) error {
			if open == 0 {
				count++
			}
			labels[v] = count - 1
			open++
			return nil
		}),
		WithOnExit(func(int) error {
			open--
			return nil
		}),
	)
	if err != nil {
		return nil, 0, err
	}
	return labels, count, nil
}
