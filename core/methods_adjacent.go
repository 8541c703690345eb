// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - link() is called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns all edges incident to id, sorted by Edge.ID ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), where d is the number of incident edges.
// Returned pointers are live catalog edges; treat them as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			if e, ok := g.edges[eid]; ok {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id,
// sorted lexicographically ascending. Propagates Neighbors errors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		seen[e.Other(id)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for nb := range seen {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// link records eid in adjacency[from][to], creating buckets on demand.
func link(g *Graph, from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacency[from] = inner
	}
	set, ok := inner[to]
	if !ok {
		set = make(map[string]struct{})
		inner[to] = set
	}
	set[eid] = struct{}{}
}
