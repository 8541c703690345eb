package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrSearchBudgetExceeded indicates the loop search hit its step budget
	// before reaching a verdict.
	ErrSearchBudgetExceeded = errors.New("circuit: search budget exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("circuit: invalid option supplied")

	// ErrUnknownReason is returned when decoding an unrecognised reason code.
	ErrUnknownReason = errors.New("circuit: unknown reason")
)

// Reason explains a negative verdict.
type Reason uint8

const (
	// ReasonNone accompanies a valid result.
	ReasonNone Reason = iota
	// ReasonMissingComponents: no source, no load or no switch on the grid.
	ReasonMissingComponents
	// ReasonShortCircuit: an element's terminals are wired together.
	ReasonShortCircuit
	// ReasonLoopNotClosed: no source closes a loop through a load and a switch.
	ReasonLoopNotClosed
)

var reasonCodes = [...]string{
	ReasonNone:              "",
	ReasonMissingComponents: "missing-required-components",
	ReasonShortCircuit:      "short-circuit",
	ReasonLoopNotClosed:     "loop-not-closed",
}

// String returns the stable machine-readable code of r.
func (r Reason) String() string {
	if int(r) < len(reasonCodes) {
		return reasonCodes[r]
	}

	return fmt.Sprintf("reason(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if int(r) >= len(reasonCodes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownReason, uint8(r))
	}

	return []byte(reasonCodes[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Reason) UnmarshalText(b []byte) error {
	for i, code := range reasonCodes {
		if code == string(b) {
			*r = Reason(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownReason, b)
}

// Result is the verdict of one analysis.
type Result struct {
	// Valid reports whether a closed loop with a load and a switch exists.
	Valid bool `json:"valid"`

	// Reason is set when Valid is false.
	Reason Reason `json:"reason,omitempty"`

	// Component is the type tag of the shorted element (ReasonShortCircuit).
	Component string `json:"component,omitempty"`

	// ComponentID is the identifier of the shorted element.
	ComponentID string `json:"component_id,omitempty"`

	// Loop lists the element IDs of the loop found: the source first, then
	// the elements in the order the search crossed them.
	Loop []string `json:"loop,omitempty"`
}

// Message renders r's feedback in lang; a valid result has no message.
func (r Result) Message(lang Lang) string {
	return r.Reason.Message(lang, r.Component)
}
