package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/circuitloop/core"
)

// sweeper floods g one component at a time; seen persists across sweeps.
type sweeper struct {
	graph *core.Graph
	ctx   context.Context
	queue []string
	seen  map[string]bool
}

// Components partitions g into connected components. Sweeps start from each
// unseen vertex in ascending ID order; each component lists its vertices in
// breadth-first visit order.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	s := &sweeper{
		graph: g,
		ctx:   o.Ctx,
		queue: make([]string, 0, n),
		seen:  make(map[string]bool, n),
	}

	var comps [][]string
	for _, v := range g.Vertices() {
		if s.seen[v] {
			continue
		}
		comp, err := s.sweep(v)
		if err != nil {
			return comps, err
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// sweep visits everything reachable from start and returns it in visit order.
func (s *sweeper) sweep(start string) ([]string, error) {
	var order []string
	s.seen[start] = true
	s.queue = append(s.queue[:0], start)
	for len(s.queue) > 0 {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		id := s.queue[0]
		s.queue = s.queue[1:]
		order = append(order, id)

		neighbors, err := s.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if !s.seen[nbr] {
				s.seen[nbr] = true
				s.queue = append(s.queue, nbr)
			}
		}
	}

	return order, nil
}
