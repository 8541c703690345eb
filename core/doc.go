// Package core provides a thread-safe, in-memory undirected multigraph with a
// minimal API surface, used as the shared substrate of the wiring and search
// packages.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges between the same endpoints (WithMultiEdges)
//   - No self-loops: AddEdge(v, v) returns ErrLoopNotAllowed
//   - Caller-chosen edge identifiers (WithEdgeID), otherwise "e1", "e2", …
//   - Constant-time edge insertion via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices(), Neighbors() and NeighborIDs() all
//     return sorted results, so traversals built on top produce reproducible
//     orders.
//   - Edge labels: an edge ID can name the thing the edge stands for (for
//     example a circuit element bridging two node-groups), so an algorithm
//     walking edges can tell two parallel edges apart.
//
// Configuration Options (GraphOption):
//
//	- WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// EdgeOptions:
//
//	- WithEdgeID(id string)
//	    Use id instead of a generated identifier; reusing an ID returns
//	    ErrDuplicateEdgeID.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	AddEdge(from, to string, opts ...EdgeOption) (string, error) // O(1)†
//	EdgeCount(), VertexCount() int                               // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d log d)
//	NeighborIDs(id string) ([]string, error)                     // O(d log d)
//	Vertices() []string                                          // sorted snapshot
//
// † amortized; vertices are created on demand by AddEdge.
//
// Concurrency:
//
// muVert guards the vertex catalog; muEdgeAdj guards the edge catalog and
// adjacency. Lock order is always muVert → muEdgeAdj.
package core
