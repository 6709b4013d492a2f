// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   • Vertex r*(cols+1)+c sits at (c, r, 0) before scaling, for
//     0 ≤ r ≤ rows and 0 ≤ c ≤ cols (row-major).
//   • Cell (r,c) with corners a=(r,c), b=(r,c+1), d=(r+1,c+1), e=(r+1,c)
//     emits (a,b,d) then (a,d,e): counter-clockwise seen from +Z.
//   • The sheet is open: its border is the rectangle outline.
//
// Complexity:
//   • Time: O(rows*cols) vertices and faces. Space: O(1) extra.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Grid returns a Constructor that builds a rows×cols sheet of unit cells.
func Grid(rows, cols int) Constructor {
	return func(s *Soup, cfg *builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		coords := make([]r3.Vec, 0, (rows+1)*(cols+1))
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				coords = append(coords, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}
		base, err := cfg.emit(MethodGrid, s, coords)
		if err != nil {
			return err
		}

		id := func(r, c int) int { return base + r*(cols+1) + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a, b, d, e := id(r, c), id(r, c+1), id(r+1, c+1), id(r+1, c)
				s.addTriangle(a, b, d)
				s.addTriangle(a, d, e)
			}
		}

		return nil
	}
}
