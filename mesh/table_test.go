package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestSplice_Renumbers inserts a triangle block in front of existing records
// and checks that every stored index still names the same half-edge.
func TestSplice_Renumbers(t *testing.T) {
	tb, err := makeTable([]int{0, 1, 2, 1, 0, 3}, 4)
	require.NoError(t, err)
	require.Equal(t, 3, tb[0].Opposite)

	block := []HalfEdge{
		{Next: 4, Opposite: NoIndex, Previous: 5, Vertex: 7},
		{Next: 5, Opposite: NoIndex, Previous: 3, Vertex: 8},
		{Next: 3, Opposite: NoIndex, Previous: 4, Vertex: 9},
	}
	tb = tb.splice(3, block...)

	require.Len(t, tb, 9)
	assert.Equal(t, 6, tb[0].Opposite, "opposite moved with its record")
	assert.Equal(t, HalfEdge{Next: 7, Opposite: 0, Previous: 8, Vertex: 0}, tb[6])
	assert.Equal(t, HalfEdge{Next: 8, Opposite: NoIndex, Previous: 6, Vertex: 3}, tb[7])
	assert.Equal(t, block, []HalfEdge(tb[3:6]), "the block is taken verbatim")
	for e := range tb {
		assert.NoError(t, tb.check(e), "half-edge %d", e)
	}
}

// TestSplice_Append leaves existing records alone.
func TestSplice_Append(t *testing.T) {
	tb, err := makeTable([]int{0, 1, 2}, 3)
	require.NoError(t, err)
	before := append(Table(nil), tb...)

	tb = tb.splice(3, HalfEdge{Next: 4, Opposite: NoIndex, Previous: 5, Vertex: 1})
	assert.Equal(t, before, tb[:3])
}

// TestShiftIndices applies the renumber rule and ignores the sentinel.
func TestShiftIndices(t *testing.T) {
	xs := []int{0, 3, 5, NoIndex}
	shiftIndices(xs, 3, 6)
	assert.Equal(t, []int{0, 9, 11, NoIndex}, xs)
}

// TestCheck_DetectsCorruption flips single fields and expects ErrInvariant.
func TestCheck_DetectsCorruption(t *testing.T) {
	corrupt := []struct {
		name string
		edit func(tb Table)
		at   int
	}{
		{name: "next outside block", edit: func(tb Table) { tb[0].Next = 3 }, at: 0},
		{name: "previous", edit: func(tb Table) { tb[1].Previous = 2 }, at: 1},
		{name: "opposite not mutual", edit: func(tb Table) { tb[0].Opposite = 4 }, at: 0},
		{name: "opposite out of range", edit: func(tb Table) { tb[0].Opposite = 60 }, at: 0},
		{name: "endpoints", edit: func(tb Table) { tb[3].Vertex = 2 }, at: 0},
	}
	for _, tc := range corrupt {
		t.Run(tc.name, func(t *testing.T) {
			tb, err := makeTable([]int{0, 1, 2, 1, 0, 3}, 4)
			require.NoError(t, err)
			tc.edit(tb)
			assert.ErrorIs(t, tb.check(tc.at), ErrInvariant)
		})
	}
}

// TestValidate_DetectsCorruption breaks the mesh-level invariants.
func TestValidate_DetectsCorruption(t *testing.T) {
	fresh := func(t *testing.T) *Mesh[Point] {
		vs := make([]Point, 4)
		for i := range vs {
			vs[i] = Point{P: r3.Vec{X: float64(i)}}
		}
		m, err := New(vs, []int{0, 1, 2, 1, 0, 3})
		require.NoError(t, err)
		require.NoError(t, m.Validate())
		return m
	}

	m := fresh(t)
	m.faces[5] = 2
	assert.ErrorIs(t, m.Validate(), ErrInvariant, "face slot disagrees with half-edge")

	m = fresh(t)
	m.outgoing[0] = 1
	assert.ErrorIs(t, m.Validate(), ErrInvariant, "outgoing half-edge leaves another vertex")

	m = fresh(t)
	m.outgoing[3] = NoIndex
	assert.ErrorIs(t, m.Validate(), ErrInvariant, "used vertex without outgoing")

	m = fresh(t)
	m.faces = m.faces[:3]
	assert.ErrorIs(t, m.Validate(), ErrInvariant)
}

// TestWalkCap reports a rotation that never returns instead of looping.
func TestWalkCap(t *testing.T) {
	// Corrupt opposites send the rotation from half-edge 1 into the cycle
	// 3 → 4 → 3, which never returns to the start.
	tb := Table{
		{Next: 1, Opposite: 3, Previous: 2, Vertex: 1},
		{Next: 2, Opposite: NoIndex, Previous: 0, Vertex: 2},
		{Next: 0, Opposite: NoIndex, Previous: 1, Vertex: 0},
		{Next: 4, Opposite: 3, Previous: 5, Vertex: 2},
		{Next: 5, Opposite: NoIndex, Previous: 3, Vertex: 3},
		{Next: 3, Opposite: 4, Previous: 4, Vertex: 0},
	}
	_, err := tb.Spokes(nil, 1, Closed)
	assert.ErrorIs(t, err, ErrInvariant)
}

// TestRenumber_IgnoresSentinel keeps boundary markers intact.
func TestRenumber_IgnoresSentinel(t *testing.T) {
	tb := Table{{Next: 1, Opposite: NoIndex, Previous: 2, Vertex: 5}}
	tb.renumber(0, 6)
	assert.Equal(t, HalfEdge{Next: 7, Opposite: NoIndex, Previous: 8, Vertex: 5}, tb[0])
}
