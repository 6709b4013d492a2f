package fan

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvmesh/mesh"
)

// FromFaces derives the triangle-adjacency array of a face list. It builds a
// throwaway half-edge table, so the face list must satisfy mesh.New.
// Complexity: O(F).
func FromFaces(faces []int) ([]int, error) {
	n := 0
	for _, v := range faces {
		if v >= n {
			n = v + 1
		}
	}
	m, err := mesh.New(make([]mesh.Point, n), faces)
	if err != nil {
		return nil, fmt.Errorf("fan: %w", err)
	}
	return m.Neighbors(), nil
}

// Visit calls visit for every triangle of the fan around corner (t, i), in
// counter-clockwise order. A non-nil error from visit stops the walk and is
// returned as is.
func Visit(neighbors []int, t, i int, mode mesh.Mode, visit func(t int) error) error {
	return walk(neighbors, t, i, mode, func(t, _ int) error { return visit(t) })
}

// Append appends the fan around corner (t, i) to dst. On error dst is
// returned at its original length.
func Append(dst []int, neighbors []int, t, i int, mode mesh.Mode) ([]int, error) {
	n := len(dst)
	err := walk(neighbors, t, i, mode, func(t, _ int) error {
		dst = append(dst, t)
		return nil
	})
	if err != nil {
		return dst[:n], err
	}
	return dst, nil
}

// VisitAll calls visit once per vertex fan with the corner the fan was found
// from and its triangles in rotational order. Open fans are reported from
// their first triangle. The slice is reused between calls.
func VisitAll(neighbors []int, visit func(t, i int, fan []int) error) error {
	if err := checkLength(neighbors); err != nil {
		return err
	}
	visited := bitset.New(uint(len(neighbors)))
	var fan []int
	for c := range neighbors {
		if visited.Test(uint(c)) {
			continue
		}
		fan = fan[:0]
		first := -1
		err := walk(neighbors, c/3, c%3, mesh.Open, func(t, i int) error {
			if first < 0 {
				first = 3*t + i
			}
			visited.Set(uint(3*t + i))
			fan = append(fan, t)
			return nil
		})
		if err != nil {
			return err
		}
		if err = visit(first/3, first%3, fan); err != nil {
			return err
		}
	}
	return nil
}

// VisitEdges calls visit once per undirected edge with the triangle and the
// local edge index it was found from: the lower slot of an interior pair or
// the boundary slot itself.
func VisitEdges(neighbors []int, visit func(t, i int) error) error {
	if err := checkLength(neighbors); err != nil {
		return err
	}
	visited := bitset.New(uint(len(neighbors)))
	for c, nt := range neighbors {
		if visited.Test(uint(c)) {
			continue
		}
		visited.Set(uint(c))
		if nt != mesh.NoIndex {
			j, err := slot(neighbors, nt, c/3)
			if err != nil {
				return err
			}
			visited.Set(uint(3*nt + j))
		}
		if err := visit(c/3, c%3); err != nil {
			return err
		}
	}
	return nil
}

// Thorns returns the three triangles across the edges of t.
func Thorns(neighbors []int, t int) ([3]int, error) {
	thorns := [3]int{mesh.NoIndex, mesh.NoIndex, mesh.NoIndex}
	if err := checkCorner(neighbors, t, 0); err != nil {
		return thorns, err
	}
	copy(thorns[:], neighbors[3*t:3*t+3])
	return thorns, nil
}

// walk reports every corner (t, i) of the fan. Crossing the edge in front of
// the center (slot i) goes clockwise, crossing the edge behind it (slot i-1)
// goes counter-clockwise.
func walk(neighbors []int, t, i int, mode mesh.Mode, fn func(t, i int) error) error {
	if err := checkCorner(neighbors, t, i); err != nil {
		return err
	}
	limit := len(neighbors) / 3
	start, si := t, i
	if mode == mesh.Open {
		cur, ci := t, i
		for steps := 0; ; steps++ {
			if steps > limit {
				return fmt.Errorf("fan: rewind from corner (%d, %d): walk does not return: %w", t, i, mesh.ErrInvariant)
			}
			prev, err := across(neighbors, cur, ci)
			if err != nil {
				return err
			}
			if prev == mesh.NoIndex {
				break
			}
			j, err := slot(neighbors, prev, cur)
			if err != nil {
				return err
			}
			cur, ci = prev, (j+1)%3
			if cur == t {
				break
			}
		}
		start, si = cur, ci
	}

	cur, ci := start, si
	for steps := 0; ; steps++ {
		if steps > limit {
			return fmt.Errorf("fan: corner (%d, %d): walk does not return: %w", t, i, mesh.ErrInvariant)
		}
		if err := fn(cur, ci); err != nil {
			return err
		}
		next, err := across(neighbors, cur, (ci+2)%3)
		if err != nil {
			return err
		}
		if next == mesh.NoIndex {
			if mode == mesh.Closed {
				return fmt.Errorf("fan: corner (%d, %d): boundary at triangle %d: %w", t, i, cur, mesh.ErrOpenFanTraversal)
			}
			return nil
		}
		j, err := slot(neighbors, next, cur)
		if err != nil {
			return err
		}
		cur, ci = next, j
		if cur == start {
			return nil
		}
	}
}

// across returns the neighbor in slot k of triangle t.
func across(neighbors []int, t, k int) (int, error) {
	nt := neighbors[3*t+k]
	if nt != mesh.NoIndex && (nt < 0 || 3*nt >= len(neighbors)) {
		return mesh.NoIndex, fmt.Errorf("fan: triangle %d slot %d names triangle %d: %w", t, k, nt, mesh.ErrInvariant)
	}
	return nt, nil
}

// slot finds the edge of u that faces w.
func slot(neighbors []int, u, w int) (int, error) {
	for j := 0; j < 3; j++ {
		if neighbors[3*u+j] == w {
			return j, nil
		}
	}
	return -1, fmt.Errorf("fan: triangle %d does not point back to %d: %w", u, w, mesh.ErrInvariant)
}

func checkLength(neighbors []int) error {
	if len(neighbors)%3 != 0 {
		return fmt.Errorf("fan: %d adjacency entries: %w", len(neighbors), mesh.ErrBadFaceList)
	}
	return nil
}

func checkCorner(neighbors []int, t, i int) error {
	if err := checkLength(neighbors); err != nil {
		return err
	}
	if t < 0 || 3*t >= len(neighbors) || i < 0 || i > 2 {
		return fmt.Errorf("fan: corner (%d, %d) of %d triangles: %w", t, i, len(neighbors)/3, mesh.ErrOutOfRangeIndex)
	}
	return nil
}
