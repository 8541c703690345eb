package gridgraph

import (
	"sync"

	"github.com/katalvlaran/circuitloop/bfs"
)

// Partition assigns every node identifier to an electrical node-group.
// Groups found in the graph are numbered from 1 in component order; an
// identifier never seen before is given a fresh singleton group the first
// time it is asked about, and keeps it.
type Partition struct {
	mu    sync.Mutex
	group map[string]int
	next  int
}

// Partition flood-fills gg.Graph. opts are passed to bfs.Components, so a
// bfs.WithContext option makes the sweep cancellable.
//
// Complexity: O(V + E).
func (gg *GridGraph) Partition(opts ...bfs.Option) (*Partition, error) {
	if gg == nil || gg.Graph == nil {
		return nil, ErrNilGraph
	}
	comps, err := bfs.Components(gg.Graph, opts...)
	if err != nil {
		return nil, err
	}

	p := &Partition{group: make(map[string]int, gg.Graph.VertexCount())}
	for _, comp := range comps {
		p.next++
		for _, id := range comp {
			p.group[id] = p.next
		}
	}

	return p, nil
}

// GroupOf returns the node-group of id. Two identifiers share a group iff they
// are electrically connected by wires.
func (p *Partition) GroupOf(id string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if g, ok := p.group[id]; ok {
		return g
	}
	p.next++
	p.group[id] = p.next

	return p.next
}

// Same reports whether a and b are in the same node-group.
func (p *Partition) Same(a, b string) bool {
	return p.GroupOf(a) == p.GroupOf(b)
}

// Len returns the number of groups assigned so far.
func (p *Partition) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.next
}
