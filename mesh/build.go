package mesh

import (
	"fmt"
	"log/slog"
	"slices"
)

// directedEdge keys the opposite lookup during construction.
type directedEdge struct {
	from, to int
}

// New builds a Mesh from vertices and a face list of counter-clockwise
// triangles. Both inputs are copied.
//
// Validation, in order:
//   - len(faces)%3 != 0 → ErrBadFaceList.
//   - a face id outside [0, len(vertices)) → ErrOutOfRangeIndex.
//   - a triangle with a repeated vertex → ErrDegenerateTriangle.
//   - a directed edge claimed twice → ErrDuplicateDirectedEdge, joined with
//     ErrInconsistentOrientation (reverse edge absent) or ErrNonManifold.
//
// No mesh is returned unless every check passes.
// Complexity: O(V + F) expected time and memory.
func New[V Vertex[V]](vertices []V, faces []int, opts ...Option) (*Mesh[V], error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	edges, err := makeTable(faces, len(vertices))
	if err != nil {
		return nil, err
	}
	m := &Mesh[V]{
		vertices: slices.Clone(vertices),
		faces:    slices.Clone(faces),
		edges:    edges,
		outgoing: makeOutgoing(edges, len(vertices)),
		logger:   o.logger,
	}
	m.logger.Debug("mesh: built",
		slog.Int("vertices", len(m.vertices)),
		slog.Int("triangles", len(m.faces)/3),
		slog.Int("half_edges", len(m.edges)))

	return m, nil
}

// makeTable creates the half-edge table of faces and pairs opposites through a
// map keyed by the directed edge.
func makeTable(faces []int, nVertices int) (Table, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("%d indices: %w", len(faces), ErrBadFaceList)
	}
	for i, v := range faces {
		if v < 0 || v >= nVertices {
			return nil, fmt.Errorf("triangle %d corner %d: vertex %d of %d: %w",
				i/3, i%3, v, nVertices, ErrOutOfRangeIndex)
		}
	}

	edges := make(Table, len(faces))
	index := make(map[directedEdge]int, len(faces))
	for t := 0; t < len(faces)/3; t++ {
		a, b, c := faces[3*t], faces[3*t+1], faces[3*t+2]
		if a == b || b == c || c == a {
			return nil, fmt.Errorf("triangle %d (%d,%d,%d): %w", t, a, b, c, ErrDegenerateTriangle)
		}
		for i := 0; i < 3; i++ {
			e := 3*t + i
			key := directedEdge{from: faces[e], to: faces[next3(e)]}
			if prior, dup := index[key]; dup {
				cause := ErrInconsistentOrientation
				if _, rev := index[directedEdge{from: key.to, to: key.from}]; rev {
					cause = ErrNonManifold
				}
				return nil, fmt.Errorf("%w: %w: %d→%d in triangles %d and %d",
					ErrDuplicateDirectedEdge, cause, key.from, key.to, prior/3, t)
			}
			index[key] = e
			edges[e] = HalfEdge{Next: next3(e), Opposite: NoIndex, Previous: prev3(e), Vertex: key.to}
		}
	}
	for key, e := range index {
		if o, ok := index[directedEdge{from: key.to, to: key.from}]; ok {
			edges[e].Opposite = o
		}
	}

	return edges, nil
}

// makeOutgoing records, for every vertex, one half-edge leaving it. Later
// half-edges overwrite earlier ones; vertices outside every triangle keep NoIndex.
func makeOutgoing(edges Table, nVertices int) []int {
	outgoing := make([]int, nVertices)
	for i := range outgoing {
		outgoing[i] = NoIndex
	}
	for e := range edges {
		outgoing[edges.Origin(e)] = e
	}
	return outgoing
}
