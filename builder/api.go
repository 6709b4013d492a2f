// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildSoup(bopts, cons...). Resolves cfg, runs cons in order.
//   - BuildMesh wraps BuildSoup and hands the result to mesh.New.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical soups.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// Soup is an indexed triangle list under construction: vertex positions and
// a flat face list, three vertex ids per counter-clockwise triangle.
type Soup struct {
	Positions []r3.Vec
	Faces     []int
}

// addVertex appends p and returns its id.
func (s *Soup) addVertex(p r3.Vec) int {
	s.Positions = append(s.Positions, p)
	return len(s.Positions) - 1
}

// addTriangle appends one triangle of already emitted vertex ids.
func (s *Soup) addTriangle(a, b, c int) {
	s.Faces = append(s.Faces, a, b, c)
}

// Constructor appends one component to the soup using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place every vertex through cfg.place so scale, origin and jitter apply.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(s *Soup, cfg *builderConfig) error

// BuildSoup resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildSoup: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildSoup(bopts []BuilderOption, cons ...Constructor) (*Soup, error) {
	cfg := newBuilderConfig(bopts...)
	return buildSoup(&cfg, cons)
}

func buildSoup(cfg *builderConfig, cons []Constructor) (*Soup, error) {
	s := &Soup{}

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildSoup: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSoup: %w", err)
		}
	}

	return s, nil
}

// BuildMesh runs the constructors like BuildSoup and builds a mesh of
// mesh.Point vertices from the result. Mesh construction errors are returned
// unchanged (mesh sentinels).
//
// Complexity: BuildSoup cost plus O(V + F) for mesh.New.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.Mesh[mesh.Point], error) {
	cfg := newBuilderConfig(bopts...)
	s, err := buildSoup(&cfg, cons)
	if err != nil {
		return nil, err
	}

	points := make([]mesh.Point, len(s.Positions))
	for i, p := range s.Positions {
		points[i] = mesh.Point{P: p}
	}

	return mesh.New(points, s.Faces, mesh.WithLogger(cfg.logger))
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Emit vertices and faces in a stable, documented order.
//   - Emit counter-clockwise faces only.
//   - Return only sentinel errors; NEVER panic at runtime.

// Triangle builds a single unit right triangle in the XY plane.
// Complexity: O(1).
//func Triangle() Constructor

// Diamond builds two triangles (0,1,2) and (1,0,3) sharing the edge 0–1.
// Complexity: O(1).
//func Diamond() Constructor

// PlatonicSolid builds a closed Platonic shell centered on the origin.
// Complexity: O(V+F) for the chosen solid.
//func PlatonicSolid(name PlatonicName) Constructor

// Grid builds a rows×cols sheet of unit cells, two triangles per cell.
// Complexity: O(rows*cols).
//func Grid(rows, cols int) Constructor

// Wheel builds a hub with an (n-1)-gon rim, n-1 triangles.
// Complexity: O(n).
//func Wheel(n int) Constructor
