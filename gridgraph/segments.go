package gridgraph

import (
	"context"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/circuitloop/schematic"
)

// Normalize expands wires into unique unit segments, in order of first
// appearance. A vertical wire from y1 to y2 yields one segment per step from
// min(y1,y2) to max(y1,y2)-1 at fixed x; horizontal wires likewise along x.
// Zero-length wires yield nothing.
//
// Returns an error wrapping schematic.ErrInvalidSchematic and
// schematic.ErrNotAxisAligned for a diagonal wire, or ctx.Err() once ctx is
// done. Callers bound L with schematic.WithMaxWireLength.
//
// Complexity: O(L) time and memory for total wire length L.
func Normalize(ctx context.Context, wires []schematic.WireSegment) ([]UnitSegment, error) {
	seen := orderedmap.New[UnitSegment, struct{}]()
	var n uint
	add := func(u UnitSegment) error {
		seen.Set(u, struct{}{})
		if n++; n%ctxCheckEvery == 0 {
			return ctx.Err()
		}

		return nil
	}

	for i, w := range wires {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch {
		case w.Vertical():
			lo, hi := minmax(w.Y1, w.Y2)
			for y := lo; y < hi; y++ {
				if err := add(unitSegment(Point{w.X1, y}, Point{w.X1, y + 1})); err != nil {
					return nil, err
				}
			}
		case w.Horizontal():
			lo, hi := minmax(w.X1, w.X2)
			for x := lo; x < hi; x++ {
				if err := add(unitSegment(Point{x, w.Y1}, Point{x + 1, w.Y1})); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("%w: %w: wire %d %s",
				schematic.ErrInvalidSchematic, schematic.ErrNotAxisAligned, i, w)
		}
	}

	out := make([]UnitSegment, 0, seen.Len())
	for pair := seen.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out, nil
}

// ctxCheckEvery is how many unit segments Normalize emits between
// cancellation checks.
const ctxCheckEvery = 4096

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}

	return a, b
}
