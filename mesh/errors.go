// Package mesh: sentinel error set.
//
// Every message is prefixed with "mesh: ". Functions attach context with
// fmt.Errorf("...: %w", ErrX); callers branch with errors.Is.

package mesh

import "errors"

var (
	// ErrBadFaceList indicates a face list whose length is not a multiple of 3.
	ErrBadFaceList = errors.New("mesh: face list length must be a multiple of 3")

	// ErrOutOfRangeIndex indicates a vertex, triangle or half-edge id outside
	// the current tables.
	ErrOutOfRangeIndex = errors.New("mesh: index out of range")

	// ErrDegenerateTriangle indicates a triangle that lists a vertex twice.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle")

	// ErrNonManifold indicates an edge shared by more than two triangles, or an
	// edit that would create one.
	ErrNonManifold = errors.New("mesh: non-manifold input")

	// ErrDuplicateDirectedEdge indicates that two triangles claim the same
	// directed edge. It is always reported together with ErrNonManifold or
	// ErrInconsistentOrientation.
	ErrDuplicateDirectedEdge = errors.New("mesh: duplicate directed edge")

	// ErrInconsistentOrientation indicates two triangles sharing an edge in the
	// same direction (opposite winding).
	ErrInconsistentOrientation = errors.New("mesh: inconsistent orientation")

	// ErrUnsupportedBoundarySplit indicates SplitEdge on a boundary half-edge.
	ErrUnsupportedBoundarySplit = errors.New("mesh: boundary edge split is not supported")

	// ErrOpenFanTraversal indicates a Closed walk that reached a boundary.
	ErrOpenFanTraversal = errors.New("mesh: closed traversal reached a boundary")

	// ErrDisconnectedPath indicates an Exsect path that is not embedded in the
	// mesh connectivity.
	ErrDisconnectedPath = errors.New("mesh: path is not connected in the mesh")

	// ErrEdgeNotFound indicates that no half-edge joins the requested vertices.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrBadParameter indicates a NaN or infinite split parameter.
	ErrBadParameter = errors.New("mesh: split parameter must be finite")

	// ErrInvariant indicates a corrupted table: a broken next/previous/opposite
	// relation, a stale outgoing entry or a walk that never returns.
	ErrInvariant = errors.New("mesh: invariant violated")
)
