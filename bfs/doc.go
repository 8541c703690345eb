// Package bfs partitions a core.Graph into connected components with a
// breadth-first flood fill.
//
// Components sweeps from every not-yet-reached vertex in sorted ID order and
// returns one vertex list per component, each in visit order. core returns
// neighbors sorted, so component order and contents are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	comps, err := bfs.Components(g, bfs.WithContext(ctx))
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrNeighbors  if core.NeighborIDs fails for any vertex.
//   - The context error when the sweep is cancelled.
package bfs
