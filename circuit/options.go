package circuit

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/circuitloop/schematic"
)

// DefaultMaxSteps bounds the loop search unless WithMaxSteps says otherwise.
const DefaultMaxSteps = 1_000_000

// Option configures Analyze.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds analysis parameters.
type Options struct {
	// Logger receives debug traces of each run. Defaults to zap.NewNop().
	Logger *zap.Logger

	// MaxSteps bounds loop-search edge expansions across all sources.
	// 0 means unlimited.
	MaxSteps int

	// Schematic options are applied when validating the input.
	Schematic []schematic.Option

	err error
}

// DefaultOptions returns a no-op logger and DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		MaxSteps: DefaultMaxSteps,
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps sets the loop-search budget.
//
//	n > 0: at most n expansions, then ErrSearchBudgetExceeded
//	n == 0: unlimited
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithSchematicOptions forwards options (such as schematic.WithTag) to input
// validation.
func WithSchematicOptions(opts ...schematic.Option) Option {
	return func(o *Options) {
		o.Schematic = append(o.Schematic, opts...)
	}
}
