// Package fan walks triangle fans over a bare triangle-adjacency array,
// without building a half-edge table.
//
// Layout
//
//	neighbors[3t+i] is the triangle across edge (faces[3t+i], faces[3t+(i+1)%3])
//	of triangle t, or mesh.NoIndex on a boundary. A corner (t, i) names the fan
//	around vertex faces[3t+i].
//
// The array can be obtained from a face list with FromFaces or from a built
// mesh with (*mesh.Mesh).Neighbors; the two agree.
//
// Modes
//
//   - mesh.Open first walks backward to the boundary, so an open fan is
//     reported from its first triangle.
//   - mesh.Closed starts at the given corner and fails with
//     mesh.ErrOpenFanTraversal when the walk meets a boundary.
//
// Limitations
//
//	Two triangles sharing more than one edge cannot be told apart by
//	adjacency alone; the walk then takes the first matching slot.
//
// Complexity
//
//	Visit and Append run in O(fan size). VisitAll and VisitEdges run in O(T)
//	time with a bitset of 3T bits.
package fan
