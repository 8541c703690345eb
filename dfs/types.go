// Package dfs defines types and options for depth-first trail search,
// including cancellation, edge filtering, acceptance and step budgets.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/circuitloop/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to FindTrail.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start or goal vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepBudgetExceeded indicates the search expanded more edges than
	// MaxSteps allows without reaching a verdict.
	ErrStepBudgetExceeded = errors.New("dfs: step budget exceeded")
)

// Option configures optional behavior of FindTrail.
type Option func(*Options)

// Options holds configurable parameters for trail search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// FilterEdge, if non-nil, is called for each candidate edge. Return false
	// to exclude the edge from traversal.
	FilterEdge func(e *core.Edge) bool

	// Accept, if non-nil, decides whether a trail that reached the goal is a
	// success. A nil Accept accepts every such trail.
	Accept func(trail []*core.Edge) bool

	// MaxSteps, if > 0, bounds the total number of edge expansions.
	// 0 means unlimited.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, no filter,
// accept-all and unlimited steps.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for cancellation. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterEdge installs an edge filter.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithAccept installs the acceptance predicate evaluated at the goal.
func WithAccept(fn func(trail []*core.Edge) bool) Option {
	return func(o *Options) {
		o.Accept = fn
	}
}

// WithMaxSteps bounds the number of edge expansions.
//
//	n > 0: at most n expansions, then ErrStepBudgetExceeded
//	n == 0: unlimited
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// TrailResult captures the outcome of FindTrail.
type TrailResult struct {
	// Found reports whether an accepted trail exists.
	Found bool

	// Trail lists the edges of the accepted trail from start to goal.
	Trail []*core.Edge

	// Vertices lists the vertices visited along Trail, start and goal included.
	Vertices []string

	// Steps counts edge expansions performed, successful or not.
	Steps int
}

// EdgeIDs returns the IDs of the edges in the trail, in order.
func (r *TrailResult) EdgeIDs() []string {
	ids := make([]string, len(r.Trail))
	for i, e := range r.Trail {
		ids[i] = e.ID
	}

	return ids
}
