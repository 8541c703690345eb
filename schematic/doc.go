// Package schematic models a grid-drawn circuit as learners lay it out: placed
// elements (sources, loads, switches, other parts) on integer grid coordinates,
// and axis-aligned wire segments between grid points.
//
// What:
//
//   - Element{Type, X, Y, Rotation} with a Kind resolved once, at ingestion,
//     from its type tag (bat → Source, lamp → Load, sw_open/sw_closed →
//     switches, a fixed list of Other parts). Callers may extend the table
//     with WithTag.
//   - Element identity is derived from its coordinate ("elem_<x>_<y>"), its
//     orientation from its rotation in radians (horizontal iff |cos r| > 0.5),
//     and it exposes two terminals "<id>_1" (left/top) and "<id>_2"
//     (right/bottom).
//   - WireSegment{X1, Y1, X2, Y2}, horizontal or vertical, any length.
//   - Validate returns a copy with every Kind resolved, or an error listing
//     every problem found.
//   - Decode/Load read JSON, YAML or TOML documents of the form
//     {elements: [...], wires: [...]}; JSONSchema describes that document.
//
// Errors:
//
//   - ErrInvalidSchematic: wrapped by every validation and decoding failure.
//   - ErrUnknownType: element type tag not in the tag table.
//   - ErrNotAxisAligned: wire is neither horizontal nor vertical.
//   - ErrInvalidRotation: rotation is NaN or infinite.
//   - ErrUnknownFormat: file extension maps to no supported format.
package schematic
