package dfs

import (
	"fmt"

	"github.com/katalvlaran/circuitloop/core"
)

// trailWalker encapsulates state during a trail search.
type trailWalker struct {
	graph    *core.Graph
	opts     Options
	goal     string
	used     map[string]bool         // edge IDs on the current trail
	trail    []*core.Edge            // current trail, push/pop
	vertices []string                // vertices along trail
	adj      map[string][]*core.Edge // memoised Neighbors
	steps    int
}

// FindTrail searches g for an edge-distinct walk from startID to goalID that
// satisfies the Accept option. The goal is tested on arrival, including at the
// start vertex, and a trail is never extended past the goal.
//
// Returns a TrailResult with Found=false when the search space is exhausted,
// or an error if aborted by the context or the step budget.
func FindTrail(g *core.Graph, startID, goalID string, opts ...Option) (*TrailResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) || !g.HasVertex(goalID) {
		return nil, ErrStartVertexNotFound
	}

	w := &trailWalker{
		graph: g,
		opts:  o,
		goal:  goalID,
		used:  make(map[string]bool),
		adj:   make(map[string][]*core.Edge),
	}

	found, err := w.walk(startID)
	res := &TrailResult{Found: found, Steps: w.steps}
	if found {
		res.Trail = append([]*core.Edge(nil), w.trail...)
		res.Vertices = append(append([]string(nil), startID), w.vertices...)
	}

	return res, err
}

// walk explores from id and reports whether an accepted trail was completed.
// On success the trail and vertices slices are left holding the answer.
func (w *trailWalker) walk(id string) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	if id == w.goal {
		return w.opts.Accept == nil || w.opts.Accept(w.trail), nil
	}

	nbs, err := w.neighbors(id)
	if err != nil {
		return false, err
	}
	for _, e := range nbs {
		if w.used[e.ID] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			continue
		}

		w.steps++
		if w.opts.MaxSteps > 0 && w.steps > w.opts.MaxSteps {
			return false, fmt.Errorf("%w after %d expansions", ErrStepBudgetExceeded, w.opts.MaxSteps)
		}

		next := e.Other(id)
		w.used[e.ID] = true
		w.trail = append(w.trail, e)
		w.vertices = append(w.vertices, next)

		ok, err := w.walk(next)
		if ok || err != nil {
			return ok, err
		}

		w.vertices = w.vertices[:len(w.vertices)-1]
		w.trail = w.trail[:len(w.trail)-1]
		delete(w.used, e.ID)
	}

	return false, nil
}

func (w *trailWalker) neighbors(id string) ([]*core.Edge, error) {
	if nbs, ok := w.adj[id]; ok {
		return nbs, nil
	}
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	w.adj[id] = nbs

	return nbs, nil
}
