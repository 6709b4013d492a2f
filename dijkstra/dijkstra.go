// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// edges of a triangle mesh.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing the edges of each one-ring.
//
// Complexity:
//
//   - Time:  O((V + H) log V)
//   - Space: O(V + H)
//
// Notes on implementation choices:
//
//   - Neighbors come from the open one-ring, so boundary vertices need no special case.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - Decrease-key is lazy: duplicates are pushed and stale entries ignored.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Dijkstra computes shortest distances from the source vertex to all other
// vertices of g.
//
// Returns:
//
//   - dist: distance per vertex id (+Inf if unreachable).
//   - prev: predecessor per vertex id if ReturnPath is set, nil otherwise.
//     prev[v] == mesh.NoIndex for the source and unreachable vertices.
//   - err:  error if inputs are invalid or a weight is negative.
//
// Preconditions and validation (in order):
//  1. a source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. the source must be a vertex of g (ErrVertexNotFound).
func Dijkstra(g Graph, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrVertexNotFound, cfg.Source, n)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// Path rebuilds the vertex sequence src → … → dst from a predecessor slice.
func Path(prev []int, src, dst int) ([]int, error) {
	if dst < 0 || dst >= len(prev) || src < 0 || src >= len(prev) {
		return nil, fmt.Errorf("%w: %d → %d of %d vertices", ErrVertexNotFound, src, dst, len(prev))
	}
	path := []int{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		if cur == mesh.NoIndex || len(path) > len(prev) {
			return nil, fmt.Errorf("%w from %d to %d", ErrNoPath, src, dst)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
	ring    []int
}

// init sets every distance to +Inf and pushes the source at 0.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = mesh.NoIndex
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest vertex until the heap is empty or the closest
// distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax walks the ring of u and improves the distance of each neighbor.
// Edges at least InfEdgeThreshold long are skipped.
func (r *runner) relax(u int) error {
	var err error
	if r.ring, err = r.g.Ring(r.ring[:0], u, mesh.Open); err != nil {
		return fmt.Errorf("dijkstra: ring of %d: %w", u, err)
	}
	pu, err := r.g.Position(u)
	if err != nil {
		return fmt.Errorf("dijkstra: position of %d: %w", u, err)
	}
	for _, v := range r.ring {
		if v < 0 || v >= len(r.dist) {
			return fmt.Errorf("dijkstra: ring of %d names vertex %d: %w", u, v, mesh.ErrOutOfRangeIndex)
		}
		if r.visited[v] {
			continue
		}
		pv, err := r.g.Position(v)
		if err != nil {
			return fmt.Errorf("dijkstra: position of %d: %w", v, err)
		}
		w := r.options.Weight(u, v, pu, pv)
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by id so that
// ties pop in a stable order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
