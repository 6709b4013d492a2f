package mesh_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/mesh"
)

// ExampleNew builds two triangles sharing the edge 0–1 and walks the open
// star of vertex 0.
func ExampleNew() {
	vs := []mesh.Point{
		{P: r3.Vec{}}, {P: r3.Vec{X: 1}}, {P: r3.Vec{Y: 1}}, {P: r3.Vec{X: 0.5, Y: -1}},
	}
	m, err := mesh.New(vs, []int{0, 1, 2, 1, 0, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ring, _ := m.Ring(nil, 0, mesh.Open)
	_, err = m.Ring(nil, 0, mesh.Closed)
	fmt.Println(m.HalfEdgeCount(), m.EdgeCount(), ring)
	fmt.Println(err)
	// Output:
	// 6 5 [3 1 2]
	// spokes from half-edge 4: boundary at half-edge 2: mesh: closed traversal reached a boundary
}

// ExampleMesh_SplitEdge splits the shared edge at its midpoint.
func ExampleMesh_SplitEdge() {
	vs := []mesh.Point{
		{P: r3.Vec{}}, {P: r3.Vec{X: 1}}, {P: r3.Vec{Y: 1}}, {P: r3.Vec{X: 0.5, Y: -1}},
	}
	m, _ := mesh.New(vs, []int{0, 1, 2, 1, 0, 3})

	vn, err := m.SplitEdge(3, mesh.Midpoint)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := m.Position(vn)
	ring, _ := m.Ring(nil, vn, mesh.Closed)
	fmt.Println(vn, p.X, p.Y, p.Z, m.Faces())
	fmt.Println(ring, m.Validate())
	// Output:
	// 4 0.5 0 0 [4 1 2 1 4 3 4 0 3 4 2 0]
	// [0 3 1 2] <nil>
}

// ExampleMesh_SplitTriangle inserts the centroid of a single triangle.
func ExampleMesh_SplitTriangle() {
	vs := []mesh.Point{{P: r3.Vec{}}, {P: r3.Vec{X: 3}}, {P: r3.Vec{Y: 3}}}
	m, _ := mesh.New(vs, []int{0, 1, 2})

	vn, _ := m.SplitTriangle(0, mesh.Third, mesh.Third)
	spokes, _ := m.Spokes(nil, vn, mesh.Closed)
	fmt.Println(m.TriangleCount(), m.Faces(), spokes)
	// Output:
	// 3 [0 1 3 3 1 2 3 2 0] [3 6 2]
}
