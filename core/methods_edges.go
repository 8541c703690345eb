// File: methods_edges.go
// Role: Edge lifecycle: AddEdge/EdgeCount, plus nextEdgeID().
// Determinism:
//   - nextEdgeID() is monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - EdgeCount under muEdgeAdj read lock.

package core

import "strconv"

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Build the Edge (generated ID unless WithEdgeID), reject duplicate IDs.
//  5. Store and link adjacency in both directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{From: from, To: to}
	for _, opt := range opts {
		opt(e)
	}
	if e.ID == "" {
		e.ID = nextEdgeID(g)
	} else if _, taken := g.edges[e.ID]; taken {
		return "", ErrDuplicateEdgeID
	}

	g.edges[e.ID] = e
	link(g, from, to, e.ID)
	link(g, to, from, e.ID)

	return e.ID, nil
}

// EdgeCount returns the number of edges; parallel edges count individually.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID produces "e<n>" without fmt. Caller holds muEdgeAdj.
// Generated IDs skip over identifiers already claimed through WithEdgeID.
func nextEdgeID(g *Graph) string {
	for {
		g.nextEdgeID++
		buf := make([]byte, 0, 21)
		buf = append(buf, edgeIDPrefix)
		id := string(strconv.AppendUint(buf, g.nextEdgeID, 10))
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}
