// Package circuitloop checks grid-drawn learner circuits for a closed loop.
//
// A schematic places components (batteries, lamps, switches and other
// conducting parts) on integer grid coordinates and joins grid points with
// horizontal or vertical wires. circuitloop answers one question about it:
// does at least one battery close a loop through a lamp and a switch, with
// no component shorted out by its own wiring?
//
// Packages:
//
//	core/        thread-safe undirected multigraph with caller-chosen edge IDs
//	bfs/         breadth-first connected components (node-group flood fill)
//	dfs/         budgeted edge-distinct trail search with an acceptance hook
//	schematic/   element/wire model, type tags, validation, JSON/YAML/TOML decoding
//	gridgraph/   unit-segment wiring, terminal faces, node-group partition
//	circuit/     Analyze: missing parts, short circuits, loop closure
//	httpapi/     HTTP grading service with Prometheus metrics
//	cmd/circuitcheck  batch CLI printing one JSON verdict per file
//	cmd/circuitd      HTTP daemon serving httpapi
//
// Quick sketch of the smallest working circuit:
//
//	(1,2)──[bat]──[lamp]──[sw]──(7,2)
//	  │                           │
//	(1,5)───────────────────────(7,5)
//
// Only the left and right faces of a horizontal component conduct (top and
// bottom for a vertical one), so a wire running past a component's side
// never touches it.
//
// Topology only: there is no voltage, current or polarity model, and an
// open switch still counts as a switch in the loop.
//
//	go install github.com/katalvlaran/circuitloop/cmd/circuitcheck@latest
package circuitloop
