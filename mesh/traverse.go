package mesh

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// rewind walks clockwise from begin until the half-edge whose opposite is a
// boundary. It returns begin itself when the star is closed.
func (tb Table) rewind(begin int) (int, error) {
	e := begin
	for steps := 0; steps < len(tb); steps++ {
		o := tb[e].Opposite
		if o == NoIndex {
			return e, nil
		}
		p := tb[o].Next
		if p == begin {
			return begin, nil
		}
		e = p
	}
	return NoIndex, fmt.Errorf("rewind from half-edge %d: walk does not return: %w", begin, ErrInvariant)
}

// walkSpokes calls visit for every spoke sharing the origin of begin, in
// counter-clockwise order. visit returns false to stop early.
func (tb Table) walkSpokes(begin int, mode Mode, visit func(e int) bool) error {
	if begin < 0 || begin >= len(tb) {
		return fmt.Errorf("spokes from half-edge %d: %w", begin, ErrOutOfRangeIndex)
	}
	start := begin
	if mode == Open {
		var err error
		if start, err = tb.rewind(begin); err != nil {
			return err
		}
	}
	e := start
	for steps := 0; steps < len(tb); steps++ {
		if !visit(e) {
			return nil
		}
		o := tb.rotate(e)
		if o == NoIndex {
			if mode == Closed {
				return fmt.Errorf("spokes from half-edge %d: boundary at half-edge %d: %w",
					begin, tb[e].Previous, ErrOpenFanTraversal)
			}
			return nil
		}
		if o == start {
			return nil
		}
		e = o
	}
	return fmt.Errorf("spokes from half-edge %d: walk does not return: %w", begin, ErrInvariant)
}

// Spokes appends to dst every half-edge leaving the origin of begin, in
// rotational order, and returns the extended slice. On error dst is returned
// unchanged.
//
// In Closed mode the walk starts at begin and fails with ErrOpenFanTraversal if
// it crosses a boundary. In Open mode it first rewinds to the boundary spoke
// (if any), so the result covers the whole star either way.
// Complexity: O(degree).
func (tb Table) Spokes(dst []int, begin int, mode Mode) ([]int, error) {
	n := len(dst)
	err := tb.walkSpokes(begin, mode, func(e int) bool {
		dst = append(dst, e)
		return true
	})
	if err != nil {
		return dst[:n], err
	}
	return dst, nil
}

// Ring is Spokes projected to target vertices: the one-ring of the origin of
// begin. On a boundary star (Open mode) the ring also ends with the origin of
// the incoming boundary half-edge, which no spoke points to.
// Complexity: O(degree).
func (tb Table) Ring(dst []int, begin int, mode Mode) ([]int, error) {
	n := len(dst)
	last := NoIndex
	err := tb.walkSpokes(begin, mode, func(e int) bool {
		dst = append(dst, tb[e].Vertex)
		last = e
		return true
	})
	if err != nil {
		return dst[:n], err
	}
	if tb.rotate(last) == NoIndex {
		dst = append(dst, tb[tb[last].Next].Vertex)
	}
	return dst, nil
}

// FindInSpokes returns the first spoke for which test reports true.
// Complexity: O(degree).
func (tb Table) FindInSpokes(begin int, mode Mode, test func(h HalfEdge) bool) (int, bool, error) {
	found := NoIndex
	err := tb.walkSpokes(begin, mode, func(e int) bool {
		if test(tb[e]) {
			found = e
			return false
		}
		return true
	})
	if err != nil {
		return NoIndex, false, err
	}
	return found, found != NoIndex, nil
}

// FindInRing returns the spoke around the origin of begin that points to v.
// Returns ErrEdgeNotFound if v is not in the ring.
// Complexity: O(degree).
func (tb Table) FindInRing(begin, v int, mode Mode) (int, error) {
	e, ok, err := tb.FindInSpokes(begin, mode, func(h HalfEdge) bool { return h.Vertex == v })
	if err != nil {
		return NoIndex, err
	}
	if !ok {
		return NoIndex, fmt.Errorf("vertex %d not in ring of %d: %w", v, tb.Origin(begin), ErrEdgeNotFound)
	}
	return e, nil
}

// Thorns returns the triangles across the three edges of triangle t, NoIndex
// for boundary edges.
// Complexity: O(1).
func (tb Table) Thorns(t int) ([3]int, error) {
	thorns := [3]int{NoIndex, NoIndex, NoIndex}
	if t < 0 || 3*t+2 >= len(tb) {
		return thorns, fmt.Errorf("thorns of triangle %d: %w", t, ErrOutOfRangeIndex)
	}
	for i := 0; i < 3; i++ {
		if o := tb[3*t+i].Opposite; o != NoIndex {
			thorns[i] = o / 3
		}
	}
	return thorns, nil
}

// VisitRings calls fn once per vertex star with the center vertex and its ring,
// as Ring in Open mode would return it. Stars are discovered in half-edge
// order. The ring slice is reused between calls.
// Complexity: O(H) time, O(H) bits.
func (tb Table) VisitRings(fn func(v int, ring []int) error) error {
	var ring []int
	return tb.visitStars(func(v int, spokes []int) error {
		ring = ring[:0]
		for _, e := range spokes {
			ring = append(ring, tb[e].Vertex)
		}
		if last := spokes[len(spokes)-1]; tb.rotate(last) == NoIndex {
			ring = append(ring, tb[tb[last].Next].Vertex)
		}
		return fn(v, ring)
	})
}

// VisitFans calls fn once per vertex star with the center vertex and the
// triangles around it in rotational order. The slice is reused between calls.
// Complexity: O(H) time, O(H) bits.
func (tb Table) VisitFans(fn func(v int, triangles []int) error) error {
	var fan []int
	return tb.visitStars(func(v int, spokes []int) error {
		fan = fan[:0]
		for _, e := range spokes {
			fan = append(fan, e/3)
		}
		return fn(v, fan)
	})
}

// visitStars marks every spoke of a star as visited so that each star is
// reported once.
func (tb Table) visitStars(fn func(v int, spokes []int) error) error {
	visited := bitset.New(uint(len(tb)))
	var spokes []int
	for begin := range tb {
		if visited.Test(uint(begin)) {
			continue
		}
		var err error
		if spokes, err = tb.Spokes(spokes[:0], begin, Open); err != nil {
			return err
		}
		for _, e := range spokes {
			visited.Set(uint(e))
		}
		if err = fn(tb.Origin(begin), spokes); err != nil {
			return err
		}
	}
	return nil
}

// VisitEdges calls fn once per undirected edge with one of its half-edges:
// the lower index of an interior pair, or the boundary half-edge itself.
// Complexity: O(H) time, O(H) bits.
func (tb Table) VisitEdges(fn func(e int) error) error {
	visited := bitset.New(uint(len(tb)))
	for e := range tb {
		if visited.Test(uint(e)) {
			continue
		}
		visited.Set(uint(e))
		if o := tb[e].Opposite; o != NoIndex {
			visited.Set(uint(o))
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
