package schematic

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/multierr"
)

// Element is a component placed on the grid.
//
// Kind is resolved from Type by Validate; it is never read from documents.
// An Element built in code with an empty Type and a non-unknown Kind takes
// the Kind's canonical tag.
type Element struct {
	Type     string  `json:"type" yaml:"type" toml:"type"`
	X        int     `json:"x" yaml:"x" toml:"x"`
	Y        int     `json:"y" yaml:"y" toml:"y"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty" toml:"rotation,omitempty" jsonschema:"description=Rotation in radians; horizontal iff |cos| > 0.5"`

	Kind Kind `json:"-" yaml:"-" toml:"-"`
}

// ID returns the coordinate-derived identifier "elem_<x>_<y>".
func (e Element) ID() string {
	return "elem_" + strconv.Itoa(e.X) + "_" + strconv.Itoa(e.Y)
}

// Horizontal reports whether the element lies along the x axis.
func (e Element) Horizontal() bool {
	return math.Abs(math.Cos(e.Rotation)) > 0.5
}

// Terminal1 returns the left (horizontal) or top (vertical) terminal ID.
func (e Element) Terminal1() string { return e.ID() + "_1" }

// Terminal2 returns the right (horizontal) or bottom (vertical) terminal ID.
func (e Element) Terminal2() string { return e.ID() + "_2" }

// WireSegment joins two grid points along one axis.
type WireSegment struct {
	X1 int `json:"x1" yaml:"x1" toml:"x1"`
	Y1 int `json:"y1" yaml:"y1" toml:"y1"`
	X2 int `json:"x2" yaml:"x2" toml:"x2"`
	Y2 int `json:"y2" yaml:"y2" toml:"y2"`
}

// Vertical reports whether w runs along the y axis. A zero-length wire is
// both vertical and horizontal.
func (w WireSegment) Vertical() bool { return w.X1 == w.X2 }

// Horizontal reports whether w runs along the x axis.
func (w WireSegment) Horizontal() bool { return w.Y1 == w.Y2 }

// Length returns the number of unit steps w spans along its axis. It is
// meaningful only for axis-aligned wires.
func (w WireSegment) Length() uint64 {
	return span(w.X1, w.X2) + span(w.Y1, w.Y2)
}

// span is |b-a| computed without signed overflow.
func span(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(b) - uint64(a)
}

func (w WireSegment) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.X1, w.Y1, w.X2, w.Y2)
}

// Schematic is the learner's drawing: elements in placement order and wires.
type Schematic struct {
	Elements []Element     `json:"elements" yaml:"elements" toml:"elements"`
	Wires    []WireSegment `json:"wires" yaml:"wires" toml:"wires"`
}

// Validate checks s and returns a copy whose elements all carry a resolved
// Kind. Every problem is reported; the returned error combines one error per
// problem, each wrapping ErrInvalidSchematic and a specific sentinel.
//
// Type tags are stored in canonical form (trimmed, lower case). Wires are
// rejected with ErrWireTooLong once their summed length passes
// Options.MaxWireLength.
//
// Two elements on the same coordinate are not an error: the later one wins
// when the grid is laid out.
func (s Schematic) Validate(opts ...Option) (Schematic, error) {
	o := buildOptions(opts)

	out := Schematic{
		Elements: make([]Element, len(s.Elements)),
		Wires:    make([]WireSegment, len(s.Wires)),
	}
	copy(out.Wires, s.Wires)

	var errs error
	for i, el := range s.Elements {
		if el.Type == "" && el.Kind != KindUnknown {
			el.Type = el.Kind.Tag()
		}
		k, ok := o.Tags.Lookup(el.Type)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w: element %d at (%d,%d) has type %q",
				ErrInvalidSchematic, ErrUnknownType, i, el.X, el.Y, el.Type))
		} else {
			el.Type = canonicalTag(el.Type)
		}
		el.Kind = k
		if math.IsNaN(el.Rotation) || math.IsInf(el.Rotation, 0) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w: element %d at (%d,%d)",
				ErrInvalidSchematic, ErrInvalidRotation, i, el.X, el.Y))
		}
		out.Elements[i] = el
	}
	var total uint64
	limit, capped := uint64(o.MaxWireLength), o.MaxWireLength > 0
	for i, w := range s.Wires {
		if !w.Vertical() && !w.Horizontal() {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w: wire %d %s",
				ErrInvalidSchematic, ErrNotAxisAligned, i, w))
			continue
		}
		if !capped {
			continue
		}
		if n := w.Length(); n > limit-total {
			errs = multierr.Append(errs, fmt.Errorf("%w: %w: wire %d %s brings the total above %d",
				ErrInvalidSchematic, ErrWireTooLong, i, w, limit))
			capped = false
		} else {
			total += n
		}
	}
	if errs != nil {
		return Schematic{}, errs
	}

	return out, nil
}
