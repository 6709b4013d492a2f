package mesh

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// NoIndex is the boundary sentinel stored in Opposite, in the outgoing index of
// isolated vertices and in triangle-adjacency slots without a neighbor.
const NoIndex = -1

// Default split parameters.
const (
	// Midpoint places a SplitEdge vertex halfway along the edge.
	Midpoint = 0.5
	// Third places a SplitTriangle vertex at the centroid when used for u and v.
	Third = 1.0 / 3.0
)

// HalfEdge is one directed edge of one triangle.
type HalfEdge struct {
	Next     int // following half-edge in the triangle, counter-clockwise
	Opposite int // reverse half-edge of the same edge, or NoIndex on a boundary
	Previous int // preceding half-edge in the triangle
	Vertex   int // vertex this half-edge points to
}

// Boundary reports whether the half-edge has no opposite.
func (h HalfEdge) Boundary() bool { return h.Opposite == NoIndex }

// Table is the flat half-edge sequence. Slot 3t+i is the half-edge from
// corner i of triangle t to corner (i+1)%3.
type Table []HalfEdge

// Mode selects how a rotational walk treats a boundary.
type Mode int

const (
	// Closed walks require a closed star and fail with ErrOpenFanTraversal on a boundary.
	Closed Mode = iota
	// Open walks rewind to the boundary, then walk forward to the other boundary.
	Open
)

// String returns "closed" or "open".
func (m Mode) String() string {
	if m == Open {
		return "open"
	}
	return "closed"
}

// Vertex is the attribute bundle a Mesh stores per vertex. The kernel reads
// Position and derives new vertices with WithPosition, which must return a
// copy carrying every other attribute unchanged.
type Vertex[V any] interface {
	Position() r3.Vec
	WithPosition(p r3.Vec) V
}

// Point is a vertex carrying only a position.
type Point struct {
	P r3.Vec
}

// Position returns the vertex position.
func (p Point) Position() r3.Vec { return p.P }

// WithPosition returns a copy moved to q.
func (p Point) WithPosition(q r3.Vec) Point { return Point{P: q} }

// PointNormal is a vertex with a position and a normal. Splits copy the normal
// of the source vertex unchanged.
type PointNormal struct {
	P r3.Vec
	N r3.Vec
}

// Position returns the vertex position.
func (p PointNormal) Position() r3.Vec { return p.P }

// WithPosition returns a copy moved to q, keeping the normal.
func (p PointNormal) WithPosition(q r3.Vec) PointNormal { return PointNormal{P: q, N: p.N} }

// Option configures a Mesh at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug records of builds and edits to l. A nil logger keeps
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Mesh is a triangle mesh in directed-edge form.
//
// vertices, faces and edges grow by appends only; faces[3t:3t+3] and
// edges[3t:3t+3] describe the same triangle t. outgoing[v] is a half-edge
// leaving v, or NoIndex if v is in no triangle.
type Mesh[V Vertex[V]] struct {
	vertices []V
	faces    []int
	edges    Table
	outgoing []int
	logger   *slog.Logger
}
