package mesh

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// SplitEdge inserts a vertex on the interior edge of half-edge e and returns
// its id. With v1 the origin and v0 the target of e, the new vertex sits at
// u·P(v0) + (1−u)·P(v1) and copies every other attribute of v0.
//
// The two triangles flanking the edge are rewritten in place and two new
// triangles are appended. Half-edge e keeps its index and now ends at the new
// vertex; its opposite keeps its index and now starts there.
//
// Errors (the mesh is unchanged on any error):
//   - ErrOutOfRangeIndex: e is not a half-edge.
//   - ErrBadParameter: u is NaN or infinite.
//   - ErrUnsupportedBoundarySplit: e has no opposite.
//   - ErrNonManifold: both flanking triangles share their third vertex.
//
// Complexity: O(1) amortized.
func (m *Mesh[V]) SplitEdge(e int, u float64) (int, error) {
	if math.IsNaN(u) || math.IsInf(u, 0) {
		return NoIndex, fmt.Errorf("split edge %d: u=%v: %w", e, u, ErrBadParameter)
	}
	if err := m.checkSplitEdge(e); err != nil {
		return NoIndex, err
	}
	v1, v0 := m.edges.Origin(e), m.edges[e].Vertex
	p := r3.Add(r3.Scale(u, m.vertices[v0].Position()), r3.Scale(1-u, m.vertices[v1].Position()))
	return m.splitEdge(e, m.vertices[v0].WithPosition(p))
}

// SplitEdgeWith is SplitEdge with a caller-supplied new vertex, for callers
// that blend attributes themselves.
func (m *Mesh[V]) SplitEdgeWith(e int, vn V) (int, error) {
	if !finite(vn.Position()) {
		return NoIndex, fmt.Errorf("split edge %d: position %v: %w", e, vn.Position(), ErrBadParameter)
	}
	if err := m.checkSplitEdge(e); err != nil {
		return NoIndex, err
	}
	return m.splitEdge(e, vn)
}

func (m *Mesh[V]) checkSplitEdge(e int) error {
	if err := m.checkHalfEdge(e); err != nil {
		return fmt.Errorf("split edge: %w", err)
	}
	o := m.edges[e].Opposite
	if o == NoIndex {
		return fmt.Errorf("split edge %d: %w", e, ErrUnsupportedBoundarySplit)
	}
	if m.edges[m.edges[e].Next].Vertex == m.edges[m.edges[o].Next].Vertex {
		return fmt.Errorf("split edge %d: flanking triangles %d and %d share every vertex: %w",
			e, e/3, o/3, ErrNonManifold)
	}
	return nil
}

// splitEdge performs the edit once every precondition holds.
//
// Triangle A = (v1, v0, v2) holds e at corner kA, triangle B = (v0, v1, v3)
// holds its opposite at corner kB. Afterwards A = (v1, vn, v2), B = (vn, v1, v3)
// and the appended triangles are C = (vn, v0, v2) and D = (vn, v3, v0).
func (m *Mesh[V]) splitEdge(e int, vertex V) (int, error) {
	o := m.edges[e].Opposite
	tA, kA := e/3, e%3
	tB, kB := o/3, o%3

	v0 := m.faces[3*tA+(kA+1)%3]
	v2 := m.faces[3*tA+(kA+2)%3]
	v3 := m.faces[3*tB+(kB+2)%3]
	a1 := 3*tA + (kA+1)%3 // v0→v2, becomes vn→v2
	b2 := 3*tB + (kB+2)%3 // v3→v0, becomes v3→vn
	oA, oB := m.edges[a1].Opposite, m.edges[b2].Opposite

	vn := len(m.vertices)
	border := len(m.edges)
	c0, c1, c2 := border, border+1, border+2
	d0, d1, d2 := border+3, border+4, border+5

	m.splice(
		HalfEdge{Next: c1, Opposite: d2, Previous: c2, Vertex: v0},
		HalfEdge{Next: c2, Opposite: oA, Previous: c0, Vertex: v2},
		HalfEdge{Next: c0, Opposite: a1, Previous: c1, Vertex: vn},
		HalfEdge{Next: d1, Opposite: b2, Previous: d2, Vertex: v3},
		HalfEdge{Next: d2, Opposite: oB, Previous: d0, Vertex: v0},
		HalfEdge{Next: d0, Opposite: c0, Previous: d1, Vertex: vn},
	)

	m.vertices = append(m.vertices, vertex)
	m.faces[3*tA+(kA+1)%3] = vn
	m.faces[3*tB+kB] = vn
	m.faces = append(m.faces, vn, v0, v2, vn, v3, v0)

	m.edges[e].Vertex = vn
	m.edges[a1].Opposite = c2
	m.edges[b2].Vertex = vn
	m.edges[b2].Opposite = d0
	if oA != NoIndex {
		m.edges[oA].Opposite = c1
	}
	if oB != NoIndex {
		m.edges[oB].Opposite = d1
	}

	// a1 and o used to leave v0; c1 still does.
	m.outgoing[v0] = c1
	m.outgoing = append(m.outgoing, c0)

	m.logger.Debug("mesh: split edge",
		slog.Int("half_edge", e),
		slog.Int("vertex", vn),
		slog.Int("triangles", len(m.faces)/3))

	return vn, nil
}

// SplitTriangle inserts a vertex inside triangle t at barycentric coordinates
// (u, v, 1−u−v) of its corners (a, b, c) and returns its id. Attributes other
// than the position are copied from a.
//
// The triangle becomes (a, b, vn) and two triangles (vn, b, c) and (vn, c, a)
// are appended. Boundary edges of t stay boundary edges.
//
// Errors (the mesh is unchanged on any error):
//   - ErrOutOfRangeIndex: t is not a triangle.
//   - ErrBadParameter: u or v is NaN or infinite.
//
// Complexity: O(1) amortized.
func (m *Mesh[V]) SplitTriangle(t int, u, v float64) (int, error) {
	if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return NoIndex, fmt.Errorf("split triangle %d: u=%v v=%v: %w", t, u, v, ErrBadParameter)
	}
	if err := m.checkTriangle(t); err != nil {
		return NoIndex, fmt.Errorf("split triangle: %w", err)
	}
	a := m.vertices[m.faces[3*t]]
	pb := m.vertices[m.faces[3*t+1]].Position()
	pc := m.vertices[m.faces[3*t+2]].Position()
	p := r3.Add(r3.Add(r3.Scale(u, a.Position()), r3.Scale(v, pb)), r3.Scale(1-u-v, pc))
	return m.splitTriangle(t, a.WithPosition(p)), nil
}

// SplitTriangleWith is SplitTriangle with a caller-supplied new vertex.
func (m *Mesh[V]) SplitTriangleWith(t int, vn V) (int, error) {
	if !finite(vn.Position()) {
		return NoIndex, fmt.Errorf("split triangle %d: position %v: %w", t, vn.Position(), ErrBadParameter)
	}
	if err := m.checkTriangle(t); err != nil {
		return NoIndex, fmt.Errorf("split triangle: %w", err)
	}
	return m.splitTriangle(t, vn), nil
}

func (m *Mesh[V]) splitTriangle(t int, vertex V) int {
	a, b, c := m.faces[3*t], m.faces[3*t+1], m.faces[3*t+2]
	s1, s2 := 3*t+1, 3*t+2 // b→c becomes b→vn, c→a becomes vn→a
	o1, o2 := m.edges[s1].Opposite, m.edges[s2].Opposite

	vn := len(m.vertices)
	border := len(m.edges)
	p0, p1, p2 := border, border+1, border+2
	q0, q1, q2 := border+3, border+4, border+5

	m.splice(
		HalfEdge{Next: p1, Opposite: s1, Previous: p2, Vertex: b},
		HalfEdge{Next: p2, Opposite: o1, Previous: p0, Vertex: c},
		HalfEdge{Next: p0, Opposite: q0, Previous: p1, Vertex: vn},
		HalfEdge{Next: q1, Opposite: p2, Previous: q2, Vertex: c},
		HalfEdge{Next: q2, Opposite: o2, Previous: q0, Vertex: a},
		HalfEdge{Next: q0, Opposite: s2, Previous: q1, Vertex: vn},
	)

	m.vertices = append(m.vertices, vertex)
	m.faces[3*t+2] = vn
	m.faces = append(m.faces, vn, b, c, vn, c, a)

	m.edges[s1].Vertex = vn
	m.edges[s1].Opposite = p0
	m.edges[s2].Opposite = q2
	if o1 != NoIndex {
		m.edges[o1].Opposite = p1
	}
	if o2 != NoIndex {
		m.edges[o2].Opposite = q1
	}

	// s2 used to leave c; q1 still does.
	m.outgoing[c] = q1
	m.outgoing = append(m.outgoing, p0)

	m.logger.Debug("mesh: split triangle",
		slog.Int("triangle", t),
		slog.Int("vertex", vn),
		slog.Int("triangles", len(m.faces)/3))

	return vn
}

// splice appends block at border = HalfEdgeCount() and keeps the outgoing
// index aligned with the renumbering.
func (m *Mesh[V]) splice(block ...HalfEdge) {
	border := len(m.edges)
	m.edges = m.edges.splice(border, block...)
	shiftIndices(m.outgoing, border, len(block))
}

func finite(p r3.Vec) bool {
	for _, x := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
