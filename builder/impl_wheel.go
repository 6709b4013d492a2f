// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_wheel.go: implementation of Wheel(n), Triangle() and Diamond().
//
// Canonical definition:
//   • Wₙ = hub + Cₙ₋₁ rim, i.e., a regular (n-1)-gon fanned around its center.
//   • Therefore, n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Hub is vertex 0 at the origin; rim vertex i+1 sits at angle 2πi/(n-1)
//     on the unit circle in the XY plane.
//   • Emits triangles (0, i+1, (i+1)%(n-1)+1) in increasing i.
//   • The hub is interior; every rim vertex lies on the boundary.
//
// Complexity:
//   • Time: O(n) vertices and faces. Space: O(1) extra.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Wheel returns a Constructor that builds the wheel Wₙ as an open disk.
func Wheel(n int) Constructor {
	return func(s *Soup, cfg *builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		coords := make([]r3.Vec, 0, n)
		coords = append(coords, r3.Vec{})
		for i := 0; i < rim; i++ {
			angle := 2 * math.Pi * float64(i) / float64(rim)
			coords = append(coords, r3.Vec{X: math.Cos(angle), Y: math.Sin(angle)})
		}
		base, err := cfg.emit(MethodWheel, s, coords)
		if err != nil {
			return err
		}

		for i := 0; i < rim; i++ {
			s.addTriangle(base, base+i+1, base+(i+1)%rim+1)
		}

		return nil
	}
}

// Triangle returns a Constructor for the single triangle (0,1,2) with corners
// (0,0,0), (1,0,0) and (0,1,0).
func Triangle() Constructor {
	return func(s *Soup, cfg *builderConfig) error {
		base, err := cfg.emit(MethodTriangle, s, []r3.Vec{{}, {X: 1}, {Y: 1}})
		if err != nil {
			return err
		}
		s.addTriangle(base, base+1, base+2)

		return nil
	}
}

// Diamond returns a Constructor for the triangles (0,1,2) and (1,0,3) sharing
// the edge 0–1, with vertex 3 at (0.5,-1,0) below that edge.
func Diamond() Constructor {
	return func(s *Soup, cfg *builderConfig) error {
		base, err := cfg.emit(MethodDiamond, s, []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 0.5, Y: -1}})
		if err != nil {
			return err
		}
		s.addTriangle(base, base+1, base+2)
		s.addTriangle(base+1, base, base+3)

		return nil
	}
}
