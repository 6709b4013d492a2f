// Package mesh implements a combinatorial half-edge kernel for triangulated
// surfaces: constant-time adjacency queries and local, topology-changing edits.
//
// What:
//
//   - Mesh stores a vertex sequence, a flat face list (three vertex ids per
//     counter-clockwise triangle), a half-edge Table and an outgoing index
//     holding one representative half-edge per vertex.
//   - Half-edge 3t+i runs from corner i of triangle t to corner (i+1)%3.
//     Every edit keeps this packing, so Next and Previous never leave the
//     triangle block and t = e/3 always names the owning triangle.
//   - A boundary is encoded as Opposite == NoIndex, never as a nil reference.
//
// Traversal:
//
//   - Spokes: half-edges leaving a common vertex, in rotational order
//     (e → Opposite(Previous(e))).
//   - Ring: targets of the spokes, the one-ring of a vertex.
//   - Fan: triangles around a vertex (see package fan for the variant that
//     walks a triangle-adjacency array instead of half-edges).
//   - Thorns: the three triangles across the edges of a triangle.
//   - VisitRings / VisitFans / VisitEdges: whole-mesh sweeps, each structure
//     reported exactly once, guarded by a bitset sized to the half-edge count.
//
// Every walk takes a Mode. Closed fails with ErrOpenFanTraversal when it meets
// a boundary; Open rewinds to the boundary first and stops at the other one.
//
// Edits:
//
//   - SplitEdge(e, u): inserts a vertex on an interior edge, 2 → 4 triangles.
//   - SplitTriangle(t, u, v): inserts a vertex inside a triangle, 1 → 3 triangles.
//   - Exsect(path): splits the spokes around every interior path vertex so the
//     path is carved into the mesh.
//
// Both splits append six half-edges through Table.splice, which renumbers every
// stored index at or beyond the insertion point. Non-position attributes of a
// new vertex are copied from the first endpoint (SplitEdge) or first corner
// (SplitTriangle); callers that need blending pass a ready vertex to
// SplitEdgeWith / SplitTriangleWith.
//
// Complexity:
//
//   - New:                O(F) expected (hash map keyed by directed edge).
//   - Spokes, Ring, Fan:  O(degree).
//   - SplitEdge/Triangle: O(1) amortized plus the O(H) renumbering pass.
//   - Visit*:             O(H), Memory O(H/8) for the bitset.
//
// Concurrency:
//
//   - None. A Mesh is single-writer; reads are safe only while no edit runs.
//     The caller serializes edits.
//
// Errors:
//
//   - ErrBadFaceList, ErrOutOfRangeIndex, ErrDegenerateTriangle at build time.
//   - ErrDuplicateDirectedEdge, together with ErrInconsistentOrientation or
//     ErrNonManifold, when two triangles claim the same directed edge.
//   - ErrUnsupportedBoundarySplit, ErrBadParameter for edits.
//   - ErrOpenFanTraversal for closed walks that hit a boundary.
//   - ErrDisconnectedPath for Exsect paths not embedded in the mesh.
//   - ErrEdgeNotFound, ErrInvariant for lookups and validation.
package mesh
