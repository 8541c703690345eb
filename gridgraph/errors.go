package gridgraph

import "errors"

var (
	// ErrGraphBuild indicates the connectivity graph rejected a vertex or edge.
	ErrGraphBuild = errors.New("gridgraph: cannot build connectivity graph")
	// ErrNilGraph indicates a Partition was requested from a nil GridGraph.
	ErrNilGraph = errors.New("gridgraph: grid graph is nil")
)
