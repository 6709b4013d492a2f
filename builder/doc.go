// Package builder provides deterministic fixture meshes for the mesh kernel,
// composed from "functional-options"-style building blocks. It keeps test
// scenes, examples and the meshkit CLI on one set of canonical geometries.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  scale, origin, RNG, jitter and logger.
//   - Orchestration:
//     – Constructor:    a closure appending vertices and triangles to a Soup.
//     – BuildSoup:      runs constructors in order and returns the raw Soup.
//     – BuildMesh:      BuildSoup followed by mesh.New over mesh.Point vertices.
//   - Topologies:
//     – Triangle, Diamond:   one triangle; two triangles sharing an edge.
//     – PlatonicSolid(name): closed genus-0 shells (tetra/cube/octa/dodeca/icosa).
//     – Grid(rows, cols):    open rectangular sheet, two triangles per cell.
//     – Wheel(n):            hub plus an (n-1)-gon rim, an open disk.
//
// Guarantees:
//
//   - Every face is counter-clockwise seen from outside (closed shells) or
//     from +Z (planar sheets), so the kernel never reports an orientation error.
//   - Several constructors in one call produce disjoint components; vertex ids
//     of a later constructor are offset by the vertices already emitted.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors (errors.Is).
//
// Determinism:
//
//   - Same inputs, options and seed ⇒ identical vertices and faces.
//   - Randomness is confined to WithJitter and requires WithSeed or WithRand.
package builder
