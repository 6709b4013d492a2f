// Package dijkstra provides Dijkstra's shortest-path algorithm over the edges
// of a triangle mesh, with edge weights taken from vertex positions.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + H) log V) time, where H is the half-edge count.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, “impassable” edge
//     thresholds and caller-defined weights.
//
// When to use:
//
//   - Choosing the vertex path handed to (*mesh.Mesh).Exsect: every consecutive
//     pair of a returned path is joined by a mesh edge.
//   - Geodesic approximations along mesh edges.
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithReturnPath())
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, err := dijkstra.Path(prev, 0, 11)
//	fmt.Println(dist[11], path)
//
// Determinism:
//
//	Ties in the heap are broken by vertex id, so equal-length routes resolve
//	the same way on every run.
package dijkstra
