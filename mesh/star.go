package mesh

import "fmt"

// Spokes appends the half-edges leaving v to dst, starting from Outgoing(v).
// Isolated vertices append nothing.
func (m *Mesh[V]) Spokes(dst []int, v int, mode Mode) ([]int, error) {
	begin, err := m.Outgoing(v)
	if err != nil || begin == NoIndex {
		return dst, err
	}
	return m.edges.Spokes(dst, begin, mode)
}

// Ring appends the one-ring of v to dst.
func (m *Mesh[V]) Ring(dst []int, v int, mode Mode) ([]int, error) {
	begin, err := m.Outgoing(v)
	if err != nil || begin == NoIndex {
		return dst, err
	}
	return m.edges.Ring(dst, begin, mode)
}

// Fan appends the triangles around v to dst, in the order of its spokes.
func (m *Mesh[V]) Fan(dst []int, v int, mode Mode) ([]int, error) {
	n := len(dst)
	dst, err := m.Spokes(dst, v, mode)
	if err != nil {
		return dst, err
	}
	for i := n; i < len(dst); i++ {
		dst[i] /= 3
	}
	return dst, nil
}

// Thorns returns the triangles across the three edges of triangle t.
func (m *Mesh[V]) Thorns(t int) ([3]int, error) {
	if err := m.checkTriangle(t); err != nil {
		return [3]int{NoIndex, NoIndex, NoIndex}, fmt.Errorf("thorns: %w", err)
	}
	return m.edges.Thorns(t)
}

// VisitRings calls fn for every vertex star of the mesh. See Table.VisitRings.
func (m *Mesh[V]) VisitRings(fn func(v int, ring []int) error) error {
	return m.edges.VisitRings(fn)
}

// VisitFans calls fn for every vertex star of the mesh. See Table.VisitFans.
func (m *Mesh[V]) VisitFans(fn func(v int, triangles []int) error) error {
	return m.edges.VisitFans(fn)
}

// VisitEdges calls fn once per undirected edge. See Table.VisitEdges.
func (m *Mesh[V]) VisitEdges(fn func(e int) error) error {
	return m.edges.VisitEdges(fn)
}
