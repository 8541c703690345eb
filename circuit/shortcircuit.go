package circuit

import "github.com/katalvlaran/circuitloop/gridgraph"

// shortCircuit returns the first element, in input order, whose two
// terminals landed in the same node-group. Every kind is checked.
func (a *analysis) shortCircuit() (gridgraph.Placement, bool) {
	for _, pl := range a.placements {
		if a.groups.Same(pl.Terminal1(), pl.Terminal2()) {
			return pl, true
		}
	}

	return gridgraph.Placement{}, false
}
