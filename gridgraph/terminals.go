package gridgraph

import (
	"sort"

	"github.com/katalvlaran/circuitloop/schematic"
)

// Placement is an element as it ended up on the grid.
type Placement struct {
	schematic.Element
	// Index is the element's position in the input list.
	Index int
}

// Point returns the placement's grid coordinate.
func (p Placement) Point() Point { return Point{p.X, p.Y} }

// Layout maps coordinates to the elements occupying them. It is immutable
// once built.
type Layout struct {
	cells    map[Point]Placement
	shadowed []Placement
}

// NewLayout places elements in order. An element placed on an already
// occupied coordinate replaces the earlier one, which is recorded as shadowed.
func NewLayout(elements []schematic.Element) *Layout {
	l := &Layout{cells: make(map[Point]Placement, len(elements))}
	for i, el := range elements {
		p := Point{el.X, el.Y}
		if prev, ok := l.cells[p]; ok {
			l.shadowed = append(l.shadowed, prev)
		}
		l.cells[p] = Placement{Element: el, Index: i}
	}

	return l
}

// At returns the element occupying p, if any.
func (l *Layout) At(p Point) (Placement, bool) {
	pl, ok := l.cells[p]

	return pl, ok
}

// Placements returns the surviving elements ordered by input position.
func (l *Layout) Placements() []Placement {
	out := make([]Placement, 0, len(l.cells))
	for _, pl := range l.cells {
		out = append(out, pl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })

	return out
}

// Shadowed returns the elements replaced by a later element on the same
// coordinate, in the order they were replaced.
func (l *Layout) Shadowed() []Placement {
	return append([]Placement(nil), l.shadowed...)
}

// Count returns how many surviving elements have kind k.
func (l *Layout) Count(k schematic.Kind) int {
	n := 0
	for _, pl := range l.cells {
		if pl.Kind == k {
			n++
		}
	}

	return n
}

// Resolve returns the node identifier a wire reaches when it enters p from
// side s. An empty coordinate yields p.NodeID(). A horizontal element conducts
// only through Left (terminal 1) and Right (terminal 2); a vertical one only
// through Top (terminal 1) and Bottom (terminal 2). Any other face reports
// ok == false.
func (l *Layout) Resolve(p Point, s Side) (id string, ok bool) {
	pl, occupied := l.cells[p]
	if !occupied {
		return p.NodeID(), true
	}

	first, second := Left, Right
	if !pl.Horizontal() {
		first, second = Top, Bottom
	}
	switch s {
	case first:
		return pl.Terminal1(), true
	case second:
		return pl.Terminal2(), true
	default:
		return "", false
	}
}
