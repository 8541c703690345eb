// Package core defines the central Graph, Vertex, and Edge types.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrDuplicateEdgeID     - WithEdgeID reused an existing identifier.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDuplicateEdgeID indicates an explicit edge ID is already in use.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge represents an undirected connection between two vertices.
//
// From and To record insertion order only; traversal treats them symmetrically.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeID assigns an explicit identifier to the new edge.
// An empty id keeps the generated one.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) {
		if id != "" {
			e.ID = id
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// nextEdgeID is the counter behind generated Edge.ID values.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowMulti bool // allow parallel edges

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[u][v][edgeID] = struct{}{}, mirrored for v→u.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Self-loops are never allowed; multi-edges only with WithMultiEdges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
