package schematic

import "strings"

// Kind is the closed set of element categories the validator reasons about.
type Kind uint8

const (
	// KindUnknown is the zero value: not yet classified.
	KindUnknown Kind = iota
	// KindSource supplies energy (battery).
	KindSource
	// KindLoad consumes energy (lamp).
	KindLoad
	// KindSwitchOpen is a switch drawn in the open position.
	KindSwitchOpen
	// KindSwitchClosed is a switch drawn in the closed position.
	KindSwitchClosed
	// KindOther conducts but counts as neither source, load nor switch.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindLoad:
		return "load"
	case KindSwitchOpen:
		return "switch-open"
	case KindSwitchClosed:
		return "switch-closed"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsSwitch reports whether k is either switch state. The validator treats
// both states alike: an open switch still conducts in the topology model.
func (k Kind) IsSwitch() bool {
	return k == KindSwitchOpen || k == KindSwitchClosed
}

// Tag returns the canonical type tag for k, or "" for KindUnknown.
func (k Kind) Tag() string {
	switch k {
	case KindSource:
		return "bat"
	case KindLoad:
		return "lamp"
	case KindSwitchOpen:
		return "sw_open"
	case KindSwitchClosed:
		return "sw_closed"
	case KindOther:
		return "other"
	default:
		return ""
	}
}

// defaultTags maps the type tags the lesson editor emits to their Kind.
var defaultTags = map[string]Kind{
	"bat":       KindSource,
	"lamp":      KindLoad,
	"sw_open":   KindSwitchOpen,
	"sw_closed": KindSwitchClosed,
	"other":     KindOther,
	"motor":     KindOther,
	"buzzer":    KindOther,
	"resistor":  KindOther,
	"led":       KindOther,
	"diode":     KindOther,
	"wire":      KindOther,
	"ammeter":   KindOther,
	"voltmeter": KindOther,
}

// Tags is a type-tag → Kind lookup table.
type Tags map[string]Kind

// DefaultTags returns a fresh copy of the built-in tag table.
func DefaultTags() Tags {
	t := make(Tags, len(defaultTags))
	for tag, k := range defaultTags {
		t[tag] = k
	}

	return t
}

// Lookup resolves tag, ignoring surrounding whitespace and case.
func (t Tags) Lookup(tag string) (Kind, bool) {
	k, ok := t[canonicalTag(tag)]
	if !ok || k == KindUnknown {
		return KindUnknown, false
	}

	return k, true
}

func canonicalTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// DefaultMaxWireLength caps the summed length of a schematic's wires, in
// grid units.
const DefaultMaxWireLength = 100_000

// Option configures ingestion.
type Option func(*Options)

// Options holds ingestion parameters.
type Options struct {
	// Tags maps element type tags to kinds.
	Tags Tags
	// MaxWireLength caps the summed length of all wires. 0 means no cap.
	MaxWireLength int
}

// DefaultOptions returns Options with the built-in tag table and
// DefaultMaxWireLength.
func DefaultOptions() Options {
	return Options{Tags: DefaultTags(), MaxWireLength: DefaultMaxWireLength}
}

// WithMaxWireLength sets the wire length cap; n <= 0 removes it.
func WithMaxWireLength(n int) Option {
	return func(o *Options) {
		o.MaxWireLength = max(n, 0)
	}
}

// WithTag adds or overrides a type tag. KindUnknown removes the tag.
func WithTag(tag string, k Kind) Option {
	return func(o *Options) {
		tag = canonicalTag(tag)
		if k == KindUnknown {
			delete(o.Tags, tag)
			return
		}
		o.Tags[tag] = k
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
