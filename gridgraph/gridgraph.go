package gridgraph

import (
	"context"
	"fmt"

	"github.com/katalvlaran/circuitloop/core"
	"github.com/katalvlaran/circuitloop/schematic"
)

// GridGraph is the wired view of a schematic.
type GridGraph struct {
	// Layout holds the surviving element placements.
	Layout *Layout
	// Segments are the normalized unit segments, in first-appearance order.
	Segments []UnitSegment
	// Graph has one vertex per terminal or plain node touched by a wire and
	// one edge per conducting segment, keyed by UnitSegment.Key.
	Graph *core.Graph
	// Blocked lists segments that reached a non-conducting face of an element.
	Blocked []UnitSegment
}

// New lays out the elements of s and wires them; see Layout.Wire.
func New(ctx context.Context, s schematic.Schematic) (*GridGraph, error) {
	return NewLayout(s.Elements).Wire(ctx, s.Wires)
}

// Wire normalizes wires and connects them to the elements of l.
// Every surviving element contributes both terminals as vertices, wired or
// not. A horizontal unit segment joins the Right face of its left end to the
// Left face of its right end; a vertical one joins the Bottom face of its
// upper end to the Top face of its lower end. A segment is kept only if both
// faces conduct.
//
// wires are expected to be validated; Wire itself only rejects diagonal
// ones. It returns ctx.Err() if ctx is done while normalizing.
//
// Complexity: O(L + N).
func (l *Layout) Wire(ctx context.Context, wires []schematic.WireSegment) (*GridGraph, error) {
	segs, err := Normalize(ctx, wires)
	if err != nil {
		return nil, err
	}

	gg := &GridGraph{
		Layout:   l,
		Segments: segs,
		Graph:    core.NewGraph(),
	}
	for _, pl := range gg.Layout.Placements() {
		if err = gg.addVertices(pl.Terminal1(), pl.Terminal2()); err != nil {
			return nil, err
		}
	}
	for _, seg := range segs {
		if err = gg.connect(seg); err != nil {
			return nil, err
		}
	}

	return gg, nil
}

func (gg *GridGraph) connect(seg UnitSegment) error {
	fromSide, toSide := Right, Left
	if !seg.Horizontal() {
		fromSide, toSide = Bottom, Top
	}
	from, okA := gg.Layout.Resolve(seg.A, fromSide)
	to, okB := gg.Layout.Resolve(seg.B, toSide)
	if !okA || !okB {
		gg.Blocked = append(gg.Blocked, seg)

		return nil
	}
	if err := gg.addVertices(from, to); err != nil {
		return err
	}
	if _, err := gg.Graph.AddEdge(from, to, core.WithEdgeID(seg.Key())); err != nil {
		return fmt.Errorf("%w: segment %s: %w", ErrGraphBuild, seg, err)
	}

	return nil
}

func (gg *GridGraph) addVertices(ids ...string) error {
	for _, id := range ids {
		if err := gg.Graph.AddVertex(id); err != nil {
			return fmt.Errorf("%w: vertex %q: %w", ErrGraphBuild, id, err)
		}
	}

	return nil
}
