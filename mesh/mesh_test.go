package mesh_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/mesh"
)

// points returns n vertices spread along X; the kernel never inspects them
// outside of splits.
func points(n int) []mesh.Point {
	ps := make([]mesh.Point, n)
	for i := range ps {
		ps[i] = mesh.Point{P: r3.Vec{X: float64(i)}}
	}
	return ps
}

func icosahedron(t testing.TB) *mesh.Mesh[mesh.Point] {
	t.Helper()
	m, err := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Icosahedron))
	require.NoError(t, err)
	return m
}

func diamond(t testing.TB) *mesh.Mesh[mesh.Point] {
	t.Helper()
	m, err := builder.BuildMesh(nil, builder.Diamond())
	require.NoError(t, err)
	return m
}

// TestNew_SharedEdge covers two triangles (0,1,2) and (1,0,3) sharing one edge.
func TestNew_SharedEdge(t *testing.T) {
	m, err := mesh.New(points(4), []int{0, 1, 2, 1, 0, 3})
	require.NoError(t, err)

	require.Equal(t, 6, m.HalfEdgeCount())
	var opposites []int
	for _, h := range m.HalfEdges() {
		opposites = append(opposites, h.Opposite)
	}
	assert.Equal(t, []int{3, mesh.NoIndex, mesh.NoIndex, 0, mesh.NoIndex, mesh.NoIndex}, opposites)
	assert.Equal(t, []int{4, 3, 2, 5}, m.OutgoingIndex())
	assert.Equal(t, 5, m.EdgeCount())
	assert.Equal(t, 1, m.EulerCharacteristic())
	require.NoError(t, m.Validate())
}

// TestNew_Errors checks every construction failure and that no mesh escapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		faces []int
		want  []error
	}{
		{name: "length", faces: []int{0, 1, 2, 3}, want: []error{mesh.ErrBadFaceList}},
		{name: "range", faces: []int{0, 1, 4}, want: []error{mesh.ErrOutOfRangeIndex}},
		{name: "negative", faces: []int{0, -1, 2}, want: []error{mesh.ErrOutOfRangeIndex}},
		{name: "degenerate", faces: []int{0, 1, 1}, want: []error{mesh.ErrDegenerateTriangle}},
		{
			name:  "duplicate directed edge",
			faces: []int{0, 1, 2, 0, 1, 3},
			want:  []error{mesh.ErrDuplicateDirectedEdge, mesh.ErrInconsistentOrientation},
		},
		{
			name:  "three triangles on one edge",
			faces: []int{0, 1, 2, 1, 0, 3, 0, 1, 3},
			want:  []error{mesh.ErrDuplicateDirectedEdge, mesh.ErrNonManifold},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := mesh.New(points(4), tc.faces)
			require.Error(t, err)
			assert.Nil(t, m)
			for _, want := range tc.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

// TestNew_CopiesInputs guards against aliasing caller slices.
func TestNew_CopiesInputs(t *testing.T) {
	faces := []int{0, 1, 2}
	m, err := mesh.New(points(3), faces)
	require.NoError(t, err)
	faces[0] = 2
	a, _, _, err := m.Triangle(0)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
}

// TestNew_Idempotent builds twice from the same face list.
func TestNew_Idempotent(t *testing.T) {
	a := icosahedron(t)
	b, err := mesh.New(a.Vertices(), a.Faces())
	require.NoError(t, err)
	assert.Equal(t, a.HalfEdges(), b.HalfEdges())
	assert.Equal(t, a.OutgoingIndex(), b.OutgoingIndex())
}

// TestStructure checks the layout relations on a closed shell.
func TestStructure(t *testing.T) {
	m := icosahedron(t)
	tb := m.HalfEdges()

	require.Equal(t, 3*m.TriangleCount(), m.HalfEdgeCount())
	for e, h := range tb {
		assert.Equal(t, e, tb[tb[h.Next].Next].Next, "next^3 of %d", e)
		assert.Equal(t, e, tb[h.Next].Previous, "previous(next) of %d", e)
		require.NotEqual(t, mesh.NoIndex, h.Opposite)
		assert.Equal(t, e, tb[h.Opposite].Opposite, "opposite(opposite) of %d", e)
		assert.Equal(t, tb.Origin(e), tb[h.Opposite].Vertex)
	}
	assert.Equal(t, 30, m.EdgeCount())
	assert.Equal(t, 2, m.EulerCharacteristic())
	require.NoError(t, m.Validate())
}

// TestQueries covers the read-only facade.
func TestQueries(t *testing.T) {
	m := diamond(t)

	e, err := m.EdgeIndex(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, e)
	_, err = m.EdgeIndex(2, 3)
	assert.ErrorIs(t, err, mesh.ErrEdgeNotFound)
	_, err = m.EdgeIndex(9, 0)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)

	origin, err := m.Origin(3)
	require.NoError(t, err)
	assert.Equal(t, 1, origin)

	deg, err := m.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, deg, "0 touches 1, 2 and 3")
	assert.True(t, m.IsBoundaryVertex(0))
	assert.False(t, m.IsBoundaryVertex(42))

	assert.Equal(t, []int{1, mesh.NoIndex, mesh.NoIndex, 0, mesh.NoIndex, mesh.NoIndex}, m.Neighbors())
	thorns, err := m.Thorns(0)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, mesh.NoIndex, mesh.NoIndex}, thorns)
	_, err = m.Thorns(2)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)

	p, err := m.Position(3)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 0.5, Y: -1}, p)
	_, err = m.HalfEdge(6)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
	_, _, _, err = m.TriangleVertices(-1)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
}

// TestIsolatedVertex covers a vertex referenced by no triangle.
func TestIsolatedVertex(t *testing.T) {
	m, err := mesh.New(points(4), []int{0, 1, 2})
	require.NoError(t, err)

	out, err := m.Outgoing(3)
	require.NoError(t, err)
	assert.Equal(t, mesh.NoIndex, out)
	deg, err := m.Degree(3)
	require.NoError(t, err)
	assert.Zero(t, deg)
	ring, err := m.Ring(nil, 3, mesh.Open)
	require.NoError(t, err)
	assert.Empty(t, ring)
	require.NoError(t, m.Validate())
}

// TestSpokes_OpenClosed contrasts the two walk modes on a boundary vertex.
func TestSpokes_OpenClosed(t *testing.T) {
	m := diamond(t)

	_, err := m.Spokes(nil, 0, mesh.Closed)
	assert.ErrorIs(t, err, mesh.ErrOpenFanTraversal)

	dst := []int{99}
	dst, err = m.Spokes(dst, 0, mesh.Open)
	require.NoError(t, err)
	assert.Equal(t, []int{99, 4, 0}, dst, "0→3 then 0→1")

	ring, err := m.Ring(nil, 0, mesh.Open)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ring)

	fan, err := m.Fan(nil, 0, mesh.Open)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, fan)

	// Closed mode from the rewound spoke still fails at the far boundary.
	tb := m.HalfEdges()
	_, err = tb.Spokes(nil, 4, mesh.Closed)
	assert.ErrorIs(t, err, mesh.ErrOpenFanTraversal)
	_, err = tb.Spokes(nil, 6, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
}

// TestRing_RoundTrip compares every ring with the vertices of its triangles.
func TestRing_RoundTrip(t *testing.T) {
	m := icosahedron(t)
	for i := 0; i < 10; i++ {
		_, err := m.SplitEdge(3*i, mesh.Midpoint)
		require.NoError(t, err)
		_, err = m.SplitTriangle(i, mesh.Third, mesh.Third)
		require.NoError(t, err)
	}

	faces := m.Faces()
	for v := 0; v < m.VertexCount(); v++ {
		var want []int
		for i := 0; i < len(faces); i += 3 {
			tri := faces[i : i+3]
			if !slices.Contains(tri, v) {
				continue
			}
			for _, w := range tri {
				if w != v && !slices.Contains(want, w) {
					want = append(want, w)
				}
			}
		}
		ring, err := m.Ring(nil, v, mesh.Closed)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, ring, "ring of %d", v)
	}
}

// TestFindInRing covers the ring search helpers.
func TestFindInRing(t *testing.T) {
	m := icosahedron(t)
	tb := m.HalfEdges()
	begin, err := m.Outgoing(0)
	require.NoError(t, err)

	e, err := tb.FindInRing(begin, 5, mesh.Closed)
	require.NoError(t, err)
	assert.Equal(t, 5, tb[e].Vertex)
	assert.Equal(t, 0, tb.Origin(e))

	_, err = tb.FindInRing(begin, 3, mesh.Closed)
	assert.ErrorIs(t, err, mesh.ErrEdgeNotFound)

	_, ok, err := tb.FindInSpokes(begin, mesh.Closed, func(h mesh.HalfEdge) bool { return h.Boundary() })
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestVisits checks the whole-mesh visitors report each star and edge once.
func TestVisits(t *testing.T) {
	m, err := builder.BuildMesh(nil, builder.Grid(2, 3))
	require.NoError(t, err)

	seen := make(map[int]int)
	err = m.VisitRings(func(v int, ring []int) error {
		seen[v]++
		want, err := m.Ring(nil, v, mesh.Open)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, ring, "ring of %d", v)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, m.VertexCount())
	for v, n := range seen {
		assert.Equal(t, 1, n, "vertex %d", v)
	}

	incidences := 0
	err = m.VisitFans(func(_ int, triangles []int) error {
		incidences += len(triangles)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3*m.TriangleCount(), incidences)

	edges := 0
	require.NoError(t, m.VisitEdges(func(int) error { edges++; return nil }))
	assert.Equal(t, m.EdgeCount(), edges)

	stop := errors.New("stop")
	assert.ErrorIs(t, m.VisitEdges(func(int) error { return stop }), stop)
}

// TestClone ensures the copy is independent.
func TestClone(t *testing.T) {
	m := icosahedron(t)
	c := m.Clone()
	_, err := c.SplitEdge(0, mesh.Midpoint)
	require.NoError(t, err)
	assert.Equal(t, 12, m.VertexCount())
	assert.Equal(t, 13, c.VertexCount())
	require.NoError(t, m.Validate())
}

// TestMode_String covers the labels used in logs and CLI output.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "closed", mesh.Closed.String())
	assert.Equal(t, "open", mesh.Open.String())
}
