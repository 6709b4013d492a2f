// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go: canonical data for Platonic solids.
//
// Design:
//   • Single source of truth for the triangulated Platonic shells (positions and faces).
//   • Public-neutral type PlatonicName and internal datasets.
//   • Every face is counter-clockwise seen from outside; every shell is closed,
//     consistently oriented and has Euler characteristic 2.
//   • The dodecahedron is not stored: it is derived from the icosahedron as its
//     dual (see impl_platonic.go).
//
// AI-Hints:
//   • Extend with alternative embeddings by adding new enums and datasets only;
//     never mutate existing faces: vertex ids are part of the public contract.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4
	Cube                             // V=8,  F=12 (two triangles per square)
	Octahedron                       // V=6,  F=8
	Dodecahedron                     // V=20, F=36 (three triangles per pentagon)
	Icosahedron                      // V=12, F=20
)

// phi is the golden ratio used by the icosahedron coordinates.
var phi = (1 + math.Sqrt(5)) / 2

// shell is one canonical triangulated solid.
type shell struct {
	positions []r3.Vec
	faces     []int
}

// platonicShells maps each stored PlatonicName to its canonical shell.
var platonicShells = map[PlatonicName]shell{
	// -------------------------------------------------------------------------
	// Tetrahedron: alternate corners of the cube [-1,1]^3.
	// -------------------------------------------------------------------------
	Tetrahedron: {
		positions: []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1}},
		faces: []int{
			0, 1, 2,
			0, 3, 1,
			0, 2, 3,
			1, 3, 2,
		},
	},

	// -------------------------------------------------------------------------
	// Cube: [-1,1]^3. Bottom face 0-1-2-3 (z=-1), top face 4-5-6-7 (z=+1);
	// each square is split along one diagonal.
	// -------------------------------------------------------------------------
	Cube: {
		positions: []r3.Vec{
			{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
		},
		faces: []int{
			0, 2, 1, 0, 3, 2, // bottom
			4, 5, 6, 4, 6, 7, // top
			0, 1, 5, 0, 5, 4, // y=-1
			1, 2, 6, 1, 6, 5, // x=+1
			2, 3, 7, 2, 7, 6, // y=+1
			3, 0, 4, 3, 4, 7, // x=-1
		},
	},

	// -------------------------------------------------------------------------
	// Octahedron: ±X (0,1), ±Y (2,3), ±Z (4,5).
	// -------------------------------------------------------------------------
	Octahedron: {
		positions: []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: []int{
			0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 4,
			2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3, 5,
		},
	},

	// -------------------------------------------------------------------------
	// Icosahedron: the three golden rectangles (±1, ±φ, 0) and permutations.
	// Vertex 0 has the one-ring 11, 5, 1, 7, 10.
	// -------------------------------------------------------------------------
	Icosahedron: {
		positions: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		faces: []int{
			0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
			1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
			3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
			4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
		},
	},
}
