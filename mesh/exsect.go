package mesh

import (
	"fmt"
	"log/slog"
)

// Exsect splits, at every interior vertex p of path, each edge of p other than
// the two path edges through it. Afterwards no triangle at p spans both sides
// of the path, so the path can be cut out as a strip of edges.
//
// A path whose first and last ids are equal is a closed loop; its seam vertex
// is processed like any other. Paths shorter than three vertices need no split.
//
// The whole path is checked before the first split:
//   - ErrOutOfRangeIndex: an id is not a vertex.
//   - ErrDisconnectedPath: two consecutive ids are equal or not adjacent.
//   - ErrBadParameter: a vertex repeats (other than a loop's closing id).
//   - ErrOpenFanTraversal: a vertex to process lies on a boundary.
//   - ErrNonManifold: a vertex to process has fewer than three spokes.
//
// It returns the number of edge splits performed.
// Complexity: O(Σ degree(p) · H) for the renumbering of each split.
func (m *Mesh[V]) Exsect(path []int) (int, error) {
	centers, err := m.checkPath(path)
	if err != nil {
		return 0, err
	}

	splits := 0
	for _, c := range centers {
		n, err := m.exsectVertex(c.prev, c.p, c.next)
		splits += n
		if err != nil {
			return splits, err
		}
	}
	m.logger.Debug("mesh: exsect",
		slog.Int("path", len(path)),
		slog.Int("splits", splits),
		slog.Int("vertices", len(m.vertices)))

	return splits, nil
}

// pathVertex is one vertex to process with its neighbors along the path.
type pathVertex struct {
	prev, p, next int
}

func (m *Mesh[V]) checkPath(path []int) ([]pathVertex, error) {
	for i, v := range path {
		if err := m.checkVertex(v); err != nil {
			return nil, fmt.Errorf("exsect: path[%d]: %w", i, err)
		}
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a == b {
			return nil, fmt.Errorf("exsect: path[%d] and path[%d] are both vertex %d: %w", i-1, i, a, ErrDisconnectedPath)
		}
		if !m.adjacent(a, b) {
			return nil, fmt.Errorf("exsect: %d and %d are not adjacent: %w", a, b, ErrDisconnectedPath)
		}
	}

	closed := len(path) > 1 && path[0] == path[len(path)-1]
	body := path
	if closed {
		body = path[:len(path)-1]
		if len(body) < 3 {
			return nil, fmt.Errorf("exsect: loop through %d vertices: %w", len(body), ErrBadParameter)
		}
	}
	seen := make(map[int]int, len(body))
	for i, v := range body {
		if j, dup := seen[v]; dup {
			return nil, fmt.Errorf("exsect: vertex %d at path[%d] and path[%d]: %w", v, j, i, ErrBadParameter)
		}
		seen[v] = i
	}

	var centers []pathVertex
	if closed {
		centers = append(centers, pathVertex{prev: body[len(body)-1], p: body[0], next: body[1]})
	}
	for i := 1; i+1 < len(path); i++ {
		centers = append(centers, pathVertex{prev: path[i-1], p: path[i], next: path[i+1]})
	}
	for _, c := range centers {
		if m.IsBoundaryVertex(c.p) {
			return nil, fmt.Errorf("exsect: vertex %d: %w", c.p, ErrOpenFanTraversal)
		}
		d, err := m.Degree(c.p)
		if err != nil {
			return nil, fmt.Errorf("exsect: vertex %d: %w", c.p, err)
		}
		if d < 3 {
			return nil, fmt.Errorf("exsect: vertex %d has degree %d: %w", c.p, d, ErrNonManifold)
		}
	}
	return centers, nil
}

// adjacent reports whether a half-edge joins a and b in either direction.
// Along a boundary only one of the two exists.
func (m *Mesh[V]) adjacent(a, b int) bool {
	if _, err := m.EdgeIndex(a, b); err == nil {
		return true
	}
	_, err := m.EdgeIndex(b, a)
	return err == nil
}

// exsectVertex walks the star of p from the spoke to prev, splitting every
// spoke up to the one reaching next, then continues from next back to prev.
// Splitting spoke i keeps i leaving p, so rotate(i) moves on to the next
// original spoke.
func (m *Mesh[V]) exsectVertex(prev, p, next int) (int, error) {
	i, err := m.edges.FindInRing(m.outgoing[p], prev, Closed)
	if err != nil {
		return 0, err
	}

	splits := 0
	for _, stop := range [2]int{next, prev} {
		i = m.edges.rotate(i)
		for steps := 0; m.edges[i].Vertex != stop; steps++ {
			if steps > len(m.edges) {
				return splits, fmt.Errorf("exsect: star of %d does not reach %d: %w", p, stop, ErrInvariant)
			}
			if _, err = m.SplitEdge(i, Midpoint); err != nil {
				return splits, err
			}
			splits++
			i = m.edges.rotate(i)
		}
	}
	return splits, nil
}
