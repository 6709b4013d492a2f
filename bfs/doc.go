// Package bfs provides breadth-first search over the vertex rings of a
// triangle mesh, returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Neighbors come from the open one-ring of each vertex, so boundary
//     vertices and isolated vertices are handled without special cases.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Rings are reported in rotational order starting at the outgoing half-edge
//	of each vertex, so the visit sequence is reproducible for a given mesh.
//
// Complexity (V = vertices, H = half-edges)
//
//   - Time:   O(V + H)
//   - Memory: O(V)
//
// Usage
//
//	m, _ := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Icosahedron))
//	res, err := bfs.BFS(m, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// ErrNeighbors, or a wrapped hook error
//	}
//	path, _ := res.PathTo(11)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if a ring walk fails; the mesh error is wrapped too.
//   - ErrNoPath               from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
