package fan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/fan"
	"github.com/katalvlaran/lvmesh/mesh"
)

// diamondNeighbors is the adjacency of faces (0,1,2) and (1,0,3).
var diamondNeighbors = []int{1, mesh.NoIndex, mesh.NoIndex, 0, mesh.NoIndex, mesh.NoIndex}

func build(t *testing.T, c builder.Constructor) (*mesh.Mesh[mesh.Point], []int) {
	t.Helper()
	m, err := builder.BuildMesh(nil, c)
	require.NoError(t, err)
	neighbors, err := fan.FromFaces(m.Faces())
	require.NoError(t, err)
	return m, neighbors
}

func TestFromFaces(t *testing.T) {
	got, err := fan.FromFaces([]int{0, 1, 2, 1, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, diamondNeighbors, got)

	got, err = fan.FromFaces(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = fan.FromFaces([]int{0, 1})
	assert.ErrorIs(t, err, mesh.ErrBadFaceList)
	_, err = fan.FromFaces([]int{0, 1, 1})
	assert.ErrorIs(t, err, mesh.ErrDegenerateTriangle)
}

func TestAppend_Diamond(t *testing.T) {
	got, err := fan.Append(nil, diamondNeighbors, 0, 0, mesh.Open)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, got, "rewound to the first triangle")

	got, err = fan.Append(nil, diamondNeighbors, 0, 2, mesh.Open)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	_, err = fan.Append(nil, diamondNeighbors, 0, 0, mesh.Closed)
	assert.ErrorIs(t, err, mesh.ErrOpenFanTraversal)
}

// TestAppend_MatchesMesh compares every corner fan with the half-edge fan of
// its center vertex.
func TestAppend_MatchesMesh(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.PlatonicSolid(builder.Icosahedron),
		builder.PlatonicSolid(builder.Cube),
		builder.Grid(3, 4),
		builder.Wheel(6),
	} {
		m, neighbors := build(t, c)
		faces := m.Faces()
		for corner, v := range faces {
			want, err := m.Fan(nil, v, mesh.Open)
			require.NoError(t, err)
			got, err := fan.Append(nil, neighbors, corner/3, corner%3, mesh.Open)
			require.NoError(t, err)
			if m.IsBoundaryVertex(v) {
				assert.Equal(t, want, got, "open fan of %d", v)
			} else {
				assert.ElementsMatch(t, want, got, "closed fan of %d", v)
				assert.Equal(t, corner/3, got[0], "a closed fan starts at its corner")
			}
		}
	}
}

func TestVisit_Stops(t *testing.T) {
	_, neighbors := build(t, builder.PlatonicSolid(builder.Icosahedron))
	stop := errors.New("stop")
	seen := 0
	err := fan.Visit(neighbors, 0, 0, mesh.Closed, func(int) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, seen)
}

func TestVisitAll(t *testing.T) {
	cases := []struct {
		name  string
		c     builder.Constructor
		fans  int
		total int
	}{
		{name: "icosahedron", c: builder.PlatonicSolid(builder.Icosahedron), fans: 12, total: 60},
		{name: "grid", c: builder.Grid(2, 3), fans: 12, total: 36},
		{name: "wheel", c: builder.Wheel(5), fans: 5, total: 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, neighbors := build(t, tc.c)
			faces := m.Faces()
			fans, total := 0, 0
			centers := map[int]bool{}
			err := fan.VisitAll(neighbors, func(tri, i int, f []int) error {
				fans++
				total += len(f)
				v := faces[3*tri+i]
				assert.False(t, centers[v], "vertex %d reported twice", v)
				centers[v] = true
				want, err := m.Fan(nil, v, mesh.Open)
				require.NoError(t, err)
				assert.ElementsMatch(t, want, f)
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tc.fans, fans)
			assert.Equal(t, tc.total, total, "every corner once")
			assert.Equal(t, m.VertexCount(), len(centers))
		})
	}
}

func TestVisitEdges(t *testing.T) {
	for _, c := range []builder.Constructor{
		builder.PlatonicSolid(builder.Dodecahedron),
		builder.Grid(3, 3),
		builder.Diamond(),
	} {
		m, neighbors := build(t, c)
		n := 0
		require.NoError(t, fan.VisitEdges(neighbors, func(_, _ int) error {
			n++
			return nil
		}))
		assert.Equal(t, m.EdgeCount(), n)
	}
}

func TestThorns(t *testing.T) {
	m, neighbors := build(t, builder.PlatonicSolid(builder.Octahedron))
	for tri := 0; tri < m.TriangleCount(); tri++ {
		want, err := m.Thorns(tri)
		require.NoError(t, err)
		got, err := fan.Thorns(neighbors, tri)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := fan.Thorns(neighbors, 8)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
}

func TestErrors(t *testing.T) {
	_, err := fan.Append(nil, diamondNeighbors, 2, 0, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
	_, err = fan.Append(nil, diamondNeighbors, 0, 3, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrOutOfRangeIndex)
	_, err = fan.Append(nil, []int{0, 1}, 0, 0, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrBadFaceList)

	// Triangle 1 does not list triangle 0 among its neighbors.
	oneWay := []int{1, mesh.NoIndex, mesh.NoIndex, mesh.NoIndex, mesh.NoIndex, mesh.NoIndex}
	_, err = fan.Append(nil, oneWay, 0, 0, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrInvariant)
	assert.ErrorIs(t, fan.VisitEdges(oneWay, func(_, _ int) error { return nil }), mesh.ErrInvariant)

	// A closed walk fails after visiting triangle 0; dst keeps its length.
	dst := []int{9}
	got, err := fan.Append(dst, diamondNeighbors, 0, 0, mesh.Closed)
	assert.ErrorIs(t, err, mesh.ErrOpenFanTraversal)
	assert.Equal(t, []int{9}, got)

	dangling := []int{7, mesh.NoIndex, mesh.NoIndex}
	_, err = fan.Append(nil, dangling, 0, 0, mesh.Open)
	assert.ErrorIs(t, err, mesh.ErrInvariant)
}
