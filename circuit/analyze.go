package circuit

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/circuitloop/bfs"
	"github.com/katalvlaran/circuitloop/gridgraph"
	"github.com/katalvlaran/circuitloop/schematic"
)

// analysis carries the state of one Analyze call.
type analysis struct {
	ctx        context.Context
	opts       Options
	log        *zap.Logger
	layout     *gridgraph.Layout
	wires      []schematic.WireSegment
	placements []gridgraph.Placement
	grid       *gridgraph.GridGraph
	groups     *gridgraph.Partition
}

// Analyze validates s and decides whether it forms a working circuit.
//
// Checks run in order and the first failing one decides the verdict:
// missing components, then short circuit, then loop closure. Wires are only
// expanded once the component check has passed. Invalid input yields an
// error wrapping schematic.ErrInvalidSchematic; an exhausted budget yields
// ErrSearchBudgetExceeded; cancellation yields ctx.Err().
//
// Analyze shares no state between calls and is safe for concurrent use.
func Analyze(ctx context.Context, s schematic.Schematic, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	log := o.Logger.With(zap.String("run_id", uuid.NewString()))

	checked, err := s.Validate(o.Schematic...)
	if err != nil {
		log.Debug("schematic rejected", zap.Error(err))
		return Result{}, err
	}

	layout := gridgraph.NewLayout(checked.Elements)
	a := &analysis{
		ctx:        ctx,
		opts:       o,
		log:        log,
		layout:     layout,
		wires:      checked.Wires,
		placements: layout.Placements(),
	}
	for _, pl := range layout.Shadowed() {
		log.Debug("element superseded",
			zap.String("id", pl.ID()), zap.String("type", pl.Type), zap.Int("index", pl.Index))
	}

	res, err := a.run()
	if err != nil {
		log.Debug("analysis aborted", zap.Error(err))
		return Result{}, err
	}
	log.Debug("verdict",
		zap.Bool("valid", res.Valid),
		zap.Stringer("reason", res.Reason),
		zap.Strings("loop", res.Loop),
	)

	return res, nil
}

func (a *analysis) run() (Result, error) {
	if a.missingComponents() {
		return Result{Reason: ReasonMissingComponents}, nil
	}

	var err error
	if a.grid, err = a.layout.Wire(a.ctx, a.wires); err != nil {
		return Result{}, err
	}
	a.log.Debug("grid wired",
		zap.Int("elements", len(a.placements)),
		zap.Int("segments", len(a.grid.Segments)),
		zap.Int("conducting", a.grid.Graph.EdgeCount()),
		zap.Int("blocked", len(a.grid.Blocked)),
	)

	if a.groups, err = a.grid.Partition(bfs.WithContext(a.ctx)); err != nil {
		return Result{}, err
	}
	a.log.Debug("node groups merged", zap.Int("groups", a.groups.Len()))

	if pl, shorted := a.shortCircuit(); shorted {
		return Result{
			Reason:      ReasonShortCircuit,
			Component:   pl.Type,
			ComponentID: pl.ID(),
		}, nil
	}

	return a.findLoop()
}

// missingComponents reports whether the surviving elements lack a source,
// a load or a switch, wiring aside.
func (a *analysis) missingComponents() bool {
	sources := a.layout.Count(schematic.KindSource)
	loads := a.layout.Count(schematic.KindLoad)
	switches := a.layout.Count(schematic.KindSwitchOpen) + a.layout.Count(schematic.KindSwitchClosed)
	a.log.Debug("components counted",
		zap.Int("sources", sources), zap.Int("loads", loads), zap.Int("switches", switches))

	return sources == 0 || loads == 0 || switches == 0
}
