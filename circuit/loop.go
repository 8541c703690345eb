package circuit

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/circuitloop/core"
	"github.com/katalvlaran/circuitloop/dfs"
	"github.com/katalvlaran/circuitloop/schematic"
)

// groupVertex names node-group n in the element graph.
func groupVertex(n int) string { return "g" + strconv.Itoa(n) }

// elementGraph has one vertex per node-group and one edge per element,
// keyed by element ID. Parallel elements become parallel edges.
func (a *analysis) elementGraph() (*core.Graph, map[string]schematic.Kind, error) {
	g := core.NewGraph(core.WithMultiEdges())
	kinds := make(map[string]schematic.Kind, len(a.placements))
	for _, pl := range a.placements {
		kinds[pl.ID()] = pl.Kind
		from := groupVertex(a.groups.GroupOf(pl.Terminal1()))
		to := groupVertex(a.groups.GroupOf(pl.Terminal2()))
		if _, err := g.AddEdge(from, to, core.WithEdgeID(pl.ID())); err != nil {
			return nil, nil, fmt.Errorf("circuit: element %s: %w", pl.ID(), err)
		}
	}

	return g, kinds, nil
}

// findLoop tries each source in input order and stops at the first one
// whose second terminal reaches its first through distinct non-source
// elements including a load and a switch. The step budget is shared by all
// sources.
func (a *analysis) findLoop() (Result, error) {
	g, kinds, err := a.elementGraph()
	if err != nil {
		return Result{}, err
	}
	a.log.Debug("element graph built",
		zap.Int("groups", g.VertexCount()), zap.Int("elements", g.EdgeCount()))

	skipSources := func(e *core.Edge) bool { return kinds[e.ID] != schematic.KindSource }
	closesLoop := func(trail []*core.Edge) bool {
		var load, sw bool
		for _, e := range trail {
			k := kinds[e.ID]
			load = load || k == schematic.KindLoad
			sw = sw || k.IsSwitch()
		}

		return load && sw
	}

	used := 0
	for _, pl := range a.placements {
		if pl.Kind != schematic.KindSource {
			continue
		}
		budget := 0
		if a.opts.MaxSteps > 0 {
			budget = a.opts.MaxSteps - used
			if budget <= 0 {
				return Result{}, fmt.Errorf("%w: %d expansions", ErrSearchBudgetExceeded, used)
			}
		}

		start := groupVertex(a.groups.GroupOf(pl.Terminal2()))
		goal := groupVertex(a.groups.GroupOf(pl.Terminal1()))
		tr, err := dfs.FindTrail(g, start, goal,
			dfs.WithContext(a.ctx),
			dfs.WithFilterEdge(skipSources),
			dfs.WithAccept(closesLoop),
			dfs.WithMaxSteps(budget),
		)
		if tr != nil {
			used += tr.Steps
		}
		if errors.Is(err, dfs.ErrStepBudgetExceeded) {
			return Result{}, fmt.Errorf("%w: %d expansions: %w", ErrSearchBudgetExceeded, a.opts.MaxSteps, err)
		}
		if err != nil {
			return Result{}, err
		}
		a.log.Debug("source searched",
			zap.String("source", pl.ID()), zap.Bool("found", tr.Found), zap.Int("steps", tr.Steps),
			zap.Strings("groups", tr.Vertices))

		if tr.Found {
			return Result{Valid: true, Loop: append([]string{pl.ID()}, tr.EdgeIDs()...)}, nil
		}
	}

	return Result{Reason: ReasonLoopNotClosed}, nil
}
