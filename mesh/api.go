// File: api.go
// Role: read-only queries over a Mesh. No mutation happens here; every method
// validates ids and returns ErrOutOfRangeIndex rather than panicking.

package mesh

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"
)

// VertexCount returns the number of vertices, isolated ones included.
func (m *Mesh[V]) VertexCount() int { return len(m.vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh[V]) TriangleCount() int { return len(m.faces) / 3 }

// HalfEdgeCount returns the number of half-edges, always 3·TriangleCount().
func (m *Mesh[V]) HalfEdgeCount() int { return len(m.edges) }

// EdgeCount returns the number of undirected edges: interior pairs count once,
// boundary half-edges count once each.
// Complexity: O(H).
func (m *Mesh[V]) EdgeCount() int {
	n := 0
	for e, h := range m.edges {
		if h.Opposite == NoIndex || e < h.Opposite {
			n++
		}
	}
	return n
}

// EulerCharacteristic returns V − E + F.
// Complexity: O(H).
func (m *Mesh[V]) EulerCharacteristic() int {
	return m.VertexCount() - m.EdgeCount() + m.TriangleCount()
}

// Vertex returns vertex v.
func (m *Mesh[V]) Vertex(v int) (V, error) {
	if err := m.checkVertex(v); err != nil {
		var zero V
		return zero, err
	}
	return m.vertices[v], nil
}

// Position returns the position of vertex v.
func (m *Mesh[V]) Position(v int) (r3.Vec, error) {
	if err := m.checkVertex(v); err != nil {
		return r3.Vec{}, err
	}
	return m.vertices[v].Position(), nil
}

// Vertices returns a copy of the vertex sequence.
func (m *Mesh[V]) Vertices() []V { return slices.Clone(m.vertices) }

// Faces returns a copy of the face list.
func (m *Mesh[V]) Faces() []int { return slices.Clone(m.faces) }

// Triangle returns the vertex ids of triangle t in counter-clockwise order.
func (m *Mesh[V]) Triangle(t int) (a, b, c int, err error) {
	if err = m.checkTriangle(t); err != nil {
		return NoIndex, NoIndex, NoIndex, err
	}
	return m.faces[3*t], m.faces[3*t+1], m.faces[3*t+2], nil
}

// TriangleVertices returns the three vertices of triangle t.
func (m *Mesh[V]) TriangleVertices(t int) (a, b, c V, err error) {
	if err = m.checkTriangle(t); err != nil {
		return a, b, c, err
	}
	return m.vertices[m.faces[3*t]], m.vertices[m.faces[3*t+1]], m.vertices[m.faces[3*t+2]], nil
}

// HalfEdge returns half-edge e.
func (m *Mesh[V]) HalfEdge(e int) (HalfEdge, error) {
	if err := m.checkHalfEdge(e); err != nil {
		return HalfEdge{}, err
	}
	return m.edges[e], nil
}

// HalfEdges returns a copy of the half-edge table.
func (m *Mesh[V]) HalfEdges() Table { return slices.Clone(m.edges) }

// Origin returns the vertex half-edge e leaves from.
func (m *Mesh[V]) Origin(e int) (int, error) {
	if err := m.checkHalfEdge(e); err != nil {
		return NoIndex, err
	}
	return m.edges.Origin(e), nil
}

// Outgoing returns the representative half-edge leaving v, or NoIndex if v
// belongs to no triangle.
func (m *Mesh[V]) Outgoing(v int) (int, error) {
	if err := m.checkVertex(v); err != nil {
		return NoIndex, err
	}
	return m.outgoing[v], nil
}

// OutgoingIndex returns a copy of the per-vertex representative table.
func (m *Mesh[V]) OutgoingIndex() []int { return slices.Clone(m.outgoing) }

// EdgeIndex returns the half-edge from v0 to v1.
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(degree(v0)).
func (m *Mesh[V]) EdgeIndex(v0, v1 int) (int, error) {
	if err := m.checkVertex(v1); err != nil {
		return NoIndex, err
	}
	begin, err := m.Outgoing(v0)
	if err != nil {
		return NoIndex, err
	}
	if begin == NoIndex {
		return NoIndex, fmt.Errorf("edge %d→%d: vertex %d is isolated: %w", v0, v1, v0, ErrEdgeNotFound)
	}
	return m.edges.FindInRing(begin, v1, Open)
}

// Degree returns the number of vertices adjacent to v: its spoke count, plus
// one on a boundary vertex for the neighbor reached only by an incoming edge.
// Isolated vertices have degree 0.
// Complexity: O(degree).
func (m *Mesh[V]) Degree(v int) (int, error) {
	begin, err := m.Outgoing(v)
	if err != nil || begin == NoIndex {
		return 0, err
	}
	degree := 0
	err = m.edges.walkSpokes(begin, Open, func(int) bool {
		degree++
		return true
	})
	if err != nil {
		return 0, err
	}
	if m.IsBoundaryVertex(v) {
		degree++
	}
	return degree, nil
}

// IsBoundaryVertex reports whether v lies on a boundary. Isolated and
// out-of-range vertices report false.
// Complexity: O(degree).
func (m *Mesh[V]) IsBoundaryVertex(v int) bool {
	if v < 0 || v >= len(m.outgoing) || m.outgoing[v] == NoIndex {
		return false
	}
	first, err := m.edges.rewind(m.outgoing[v])
	if err != nil {
		return false
	}
	return m.edges[first].Opposite == NoIndex
}

// Neighbors returns the triangle-adjacency array: entry 3t+i is the triangle
// across edge (corner i, corner i+1) of t, or NoIndex on a boundary. It is the
// input format of package fan.
// Complexity: O(H).
func (m *Mesh[V]) Neighbors() []int {
	neighbors := make([]int, len(m.edges))
	for e, h := range m.edges {
		neighbors[e] = NoIndex
		if h.Opposite != NoIndex {
			neighbors[e] = h.Opposite / 3
		}
	}
	return neighbors
}

// Clone returns a deep copy sharing only the logger.
func (m *Mesh[V]) Clone() *Mesh[V] {
	return &Mesh[V]{
		vertices: slices.Clone(m.vertices),
		faces:    slices.Clone(m.faces),
		edges:    slices.Clone(m.edges),
		outgoing: slices.Clone(m.outgoing),
		logger:   m.logger,
	}
}

func (m *Mesh[V]) checkVertex(v int) error {
	if v < 0 || v >= len(m.vertices) {
		return fmt.Errorf("vertex %d of %d: %w", v, len(m.vertices), ErrOutOfRangeIndex)
	}
	return nil
}

func (m *Mesh[V]) checkTriangle(t int) error {
	if t < 0 || t >= len(m.faces)/3 {
		return fmt.Errorf("triangle %d of %d: %w", t, len(m.faces)/3, ErrOutOfRangeIndex)
	}
	return nil
}

func (m *Mesh[V]) checkHalfEdge(e int) error {
	if e < 0 || e >= len(m.edges) {
		return fmt.Errorf("half-edge %d of %d: %w", e, len(m.edges), ErrOutOfRangeIndex)
	}
	return nil
}
