// Package dfs implements depth‑first search over the vertex rings of a
// triangle mesh, and connected-component labelling on top of it.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - Components labels each vertex with its connected component. Split
//     operations never change the count; a mesh built from disjoint face
//     lists reports one component per piece plus one per isolated vertex.
//
// Recursion:
//
//	Traversal recurses once per tree edge, so the goroutine stack grows with
//	the longest DFS path (at most V frames).
//
// Complexity:
//
//   - Time:   O(V + H)
//   - Memory: O(V) plus one ring buffer per recursion frame.
package dfs
