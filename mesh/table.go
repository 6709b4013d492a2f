package mesh

import (
	"fmt"
	"slices"
)

// next3 and prev3 are the packed-layout successors inside a triangle block.
func next3(e int) int { return e - e%3 + (e%3+1)%3 }
func prev3(e int) int { return e - e%3 + (e%3+2)%3 }

// Origin returns the vertex half-edge e leaves from.
// Complexity: O(1).
func (tb Table) Origin(e int) int { return tb[tb[e].Previous].Vertex }

// rotate returns the next spoke around the origin of e, or NoIndex when the
// walk crosses a boundary.
func (tb Table) rotate(e int) int { return tb[tb[e].Previous].Opposite }

// renumber shifts every stored half-edge index >= threshold by amount.
// Vertex ids and NoIndex are left alone.
// Complexity: O(H).
func (tb Table) renumber(threshold, amount int) {
	for i := range tb {
		h := &tb[i]
		if h.Next >= threshold {
			h.Next += amount
		}
		if h.Previous >= threshold {
			h.Previous += amount
		}
		if h.Opposite >= threshold {
			h.Opposite += amount
		}
	}
}

// splice inserts block at position at and renumbers the existing records so
// that they keep pointing at the same half-edges. The block must already be
// expressed in the final numbering.
// Complexity: O(H).
func (tb Table) splice(at int, block ...HalfEdge) Table {
	if at < len(tb) {
		tb.renumber(at, len(block))
	}
	return slices.Insert(tb, at, block...)
}

// shiftIndices applies the renumber rule to a plain index slice such as the
// outgoing index.
func shiftIndices(xs []int, threshold, amount int) {
	for i, x := range xs {
		if x >= threshold {
			xs[i] = x + amount
		}
	}
}

// check validates the relations of one half-edge against its neighbors.
func (tb Table) check(e int) error {
	h := tb[e]
	if h.Next != next3(e) || h.Previous != prev3(e) {
		return fmt.Errorf("half-edge %d: next=%d previous=%d outside its triangle block: %w",
			e, h.Next, h.Previous, ErrInvariant)
	}
	if tb[tb[tb[e].Next].Next].Next != e {
		return fmt.Errorf("half-edge %d: next^3 does not return: %w", e, ErrInvariant)
	}
	if tb[h.Next].Previous != e {
		return fmt.Errorf("half-edge %d: previous(next) != self: %w", e, ErrInvariant)
	}
	if h.Opposite == NoIndex {
		return nil
	}
	if h.Opposite < 0 || h.Opposite >= len(tb) {
		return fmt.Errorf("half-edge %d: opposite %d: %w", e, h.Opposite, ErrInvariant)
	}
	o := tb[h.Opposite]
	if o.Opposite != e {
		return fmt.Errorf("half-edge %d: opposite(opposite) = %d: %w", e, o.Opposite, ErrInvariant)
	}
	if o.Vertex != tb.Origin(e) || tb.Origin(h.Opposite) != h.Vertex {
		return fmt.Errorf("half-edge %d: opposite %d has mismatched endpoints: %w", e, h.Opposite, ErrInvariant)
	}
	return nil
}
