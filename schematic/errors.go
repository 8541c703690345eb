package schematic

import "errors"

var (
	// ErrInvalidSchematic marks input that is not a well-formed schematic.
	// It is distinct from a well-formed schematic that fails analysis.
	ErrInvalidSchematic = errors.New("schematic: invalid schematic")
	// ErrUnknownType indicates an element type tag with no known Kind.
	ErrUnknownType = errors.New("schematic: unknown element type")
	// ErrNotAxisAligned indicates a wire that is neither horizontal nor vertical.
	ErrNotAxisAligned = errors.New("schematic: wire is not axis-aligned")
	// ErrWireTooLong indicates wires whose total length exceeds the configured cap.
	ErrWireTooLong = errors.New("schematic: wire length exceeds limit")
	// ErrInvalidRotation indicates a NaN or infinite rotation.
	ErrInvalidRotation = errors.New("schematic: rotation is not finite")
	// ErrUnknownFormat indicates a document format that cannot be decoded.
	ErrUnknownFormat = errors.New("schematic: unknown document format")
)
