package mesh

import "fmt"

// Validate checks every structural invariant of the mesh and returns the first
// violation wrapped in ErrInvariant:
//   - one half-edge per face slot, packed three per triangle;
//   - next^3 = self, previous(next) = self, opposite(opposite) = self with
//     reversed endpoints;
//   - each half-edge points to the vertex in the following face slot;
//   - each outgoing entry is NoIndex or a half-edge leaving its vertex, and
//     NoIndex only for vertices in no triangle.
//
// Complexity: O(V + H).
func (m *Mesh[V]) Validate() error {
	if len(m.edges) != len(m.faces) {
		return fmt.Errorf("%d half-edges for %d face slots: %w", len(m.edges), len(m.faces), ErrInvariant)
	}
	if len(m.outgoing) != len(m.vertices) {
		return fmt.Errorf("%d outgoing entries for %d vertices: %w", len(m.outgoing), len(m.vertices), ErrInvariant)
	}

	used := make([]bool, len(m.vertices))
	for e := range m.edges {
		if err := m.edges.check(e); err != nil {
			return err
		}
		v := m.faces[next3(e)]
		if m.edges[e].Vertex != v {
			return fmt.Errorf("half-edge %d: vertex %d, face slot holds %d: %w", e, m.edges[e].Vertex, v, ErrInvariant)
		}
		if v < 0 || v >= len(m.vertices) {
			return fmt.Errorf("half-edge %d: vertex %d of %d: %w", e, v, len(m.vertices), ErrInvariant)
		}
		used[v] = true
	}

	for v, e := range m.outgoing {
		switch {
		case e == NoIndex && used[v]:
			return fmt.Errorf("vertex %d: no outgoing half-edge: %w", v, ErrInvariant)
		case e == NoIndex:
		case e < 0 || e >= len(m.edges):
			return fmt.Errorf("vertex %d: outgoing %d of %d: %w", v, e, len(m.edges), ErrInvariant)
		case m.edges.Origin(e) != v:
			return fmt.Errorf("vertex %d: outgoing %d leaves %d: %w", v, e, m.edges.Origin(e), ErrInvariant)
		}
	}
	return nil
}
