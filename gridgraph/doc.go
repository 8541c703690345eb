// Package gridgraph turns a grid-drawn schematic into a connectivity graph
// and partitions it into electrical node-groups.
//
// What:
//
//   - Normalize expands axis-aligned wires into unit segments and removes
//     duplicates, whichever direction a wire was drawn in.
//   - Layout maps each occupied coordinate to the element placed there (the
//     later element wins on collisions) and resolves which terminal, if any,
//     a wire reaches when it approaches the coordinate from a given side.
//   - Layout.Wire (or New, which lays out and wires in one call) builds a
//     *core.Graph whose vertices are plain grid nodes
//     ("node_<x>_<y>") and element terminals ("elem_<x>_<y>_1|2"), with one
//     edge per unit segment that touches conducting faces on both ends.
//   - Partition flood-fills that graph (bfs.Components) into node-groups;
//     GroupOf is total and hands out singleton groups to IDs that never
//     appeared in the graph (unwired terminals).
//
// Why:
//
//   - A wire that runs over or under a horizontal component must not be
//     mistaken for a connection to its terminals; only the left and right
//     faces of a horizontal component conduct (top and bottom for a vertical one).
//
// Complexity:
//
//   - Normalize:  O(L) for total wire length L.
//   - New:        O(L + N) for N elements.
//   - Partition:  O(V + E).
//
// Errors:
//
//   - schematic.ErrInvalidSchematic / schematic.ErrNotAxisAligned for
//     diagonal wires.
//   - ctx.Err() when normalizing is cancelled; wire expansion checks the
//     context every few thousand unit segments.
//   - ErrGraphBuild if the connectivity graph rejects an edge.
package gridgraph
