// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrUnknownSolid.
//   • Emits shell vertices in ascending canonical index order, then faces in
//     dataset order, all offset by the vertices already in the soup.
//   • Returns only sentinel errors; never panics at runtime.
//
// Dodecahedron:
//   • Derived as the dual of the icosahedron: one vertex per icosahedron face
//     (its centroid), one pentagon per icosahedron vertex. The pentagon corners
//     are the triangles around that vertex, in the rotational order reported by
//     the mesh kernel's VisitFans; each pentagon is fanned from its first corner.
//
// Complexity:
//   • Time: O(V+F) for the selected solid (constants: V≤20, F≤36).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell
// centered on the canonical origin.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *Soup, cfg *builderConfig) error {
		sh, ok := platonicShells[name]
		if name == Dodecahedron {
			var err error
			if sh, err = dodecahedron(); err != nil {
				return builderErrorf(MethodPlatonicSolid, ErrConstructFailed, "dual of icosahedron: %v", err)
			}
			ok = true
		}
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrUnknownSolid, "name %d", int(name))
		}

		base, err := cfg.emit(MethodPlatonicSolid, s, sh.positions)
		if err != nil {
			return err
		}
		for i := 0; i < len(sh.faces); i += 3 {
			s.addTriangle(base+sh.faces[i], base+sh.faces[i+1], base+sh.faces[i+2])
		}

		return nil
	}
}

// dodecahedron derives the dual shell of the canonical icosahedron.
func dodecahedron() (shell, error) {
	ico := platonicShells[Icosahedron]
	points := make([]mesh.Point, len(ico.positions))
	for i, p := range ico.positions {
		points[i] = mesh.Point{P: p}
	}
	m, err := mesh.New(points, ico.faces)
	if err != nil {
		return shell{}, err
	}

	var dual shell
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c, err := m.TriangleVertices(t)
		if err != nil {
			return shell{}, err
		}
		centroid := r3.Scale(1.0/3, r3.Add(r3.Add(a.P, b.P), c.P))
		dual.positions = append(dual.positions, centroid)
	}
	err = m.VisitFans(func(_ int, triangles []int) error {
		if len(triangles) < 3 {
			return fmt.Errorf("fan of %d triangles", len(triangles))
		}
		for k := 1; k+1 < len(triangles); k++ {
			dual.faces = append(dual.faces, triangles[0], triangles[k], triangles[k+1])
		}
		return nil
	})
	if err != nil {
		return shell{}, err
	}

	return dual, nil
}
