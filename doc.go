// Package lvmesh is a half-edge triangle-mesh kernel: build a mesh from a
// face list, walk spokes, rings and fans in constant time per step, and refine
// it in place with edge splits, triangle splits and path exsection.
//
// What is inside?
//
//	mesh/     : half-edge table, outgoing index, traversal, splits, Exsect, Validate
//	fan/      : fan walks over a bare triangle-adjacency array
//	builder/  : deterministic fixtures: platonic solids, grids, wheels
//	bfs/      : hop distances over vertex rings
//	dfs/      : depth-first traversal and connected components
//	dijkstra/ : Euclidean shortest edge paths (feeds Exsect)
//	cmd/meshkit: CLI: stats, refine, exsect, check
//
// Quick ASCII example:
//
//	    2───────1
//	    │    ╱  │
//	    │ 0 ╱   │      faces (0,1,2) and (1,0,3) share the edge 0–1;
//	    │  ╱ 1  │      half-edge 0 (0→1) and half-edge 3 (1→0) are opposites.
//	    0───────3
//
// Layout invariant
//
//	Half-edge 3t+i runs from corner i to corner (i+1)%3 of triangle t. Every
//	edit keeps this packing, so the triangle of a half-edge is always e/3.
//
//	go get github.com/katalvlaran/lvmesh/mesh
package lvmesh
