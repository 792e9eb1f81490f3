package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/oracle"
	"github.com/katalvlaran/collapse/propagate"
	"github.com/katalvlaran/collapse/rng"
	"github.com/katalvlaran/collapse/snapshot"
)

// Engine is the collapser/scheduler (C7) plus backtracker (C9): it owns
// one grid, the oracle built over that grid's catalog+topology, one
// snapshot stack, and one PRNG source (spec §5: "the PRNG is owned by
// the engine"). An Engine is not safe for concurrent use; it is
// strictly single-threaded and cooperative (spec §5).
type Engine struct {
	grid    *cell.Grid
	oracle  *oracle.Oracle
	stack   *snapshot.Stack
	cfg     *Config
	state   State
	retries int

	observers  []Observer
	inCallback bool

	impliedThisPass []CellAssignment
	lastErr         error
}

// New builds an Engine over grid using o as its adjacency oracle. o
// must have been built from grid.Catalog() and grid.Topology().
func New(grid *cell.Grid, o *oracle.Oracle, opts ...Option) *Engine {
	return &Engine{
		grid:   grid,
		oracle: o,
		stack:  snapshot.NewStack(),
		cfg:    newConfig(opts...),
		state:  Idle,
	}
}

// Subscribe registers obs to receive every subsequent event.
func (e *Engine) Subscribe(obs Observer) {
	e.observers = append(e.observers, obs)
}

// State returns the engine's current lifecycle state.
func (e *Engine) State() State { return e.state }

// Grid exposes the engine's grid for read-only inspection (tests,
// diagnostics, rendering front-ends).
func (e *Engine) Grid() *cell.Grid { return e.grid }

func (e *Engine) guardReentrant() error {
	if e.inCallback {
		return &ErrCallbackFailure{Err: ErrReentrantCall}
	}
	return nil
}

// Start initializes every cell to "any tile, not collapsed" (the grid
// passed to New is already in that state) and applies seed, forcing
// each listed cell to its given tile (spec §4.6 `start`). Seed
// assignments are not recorded on the snapshot stack: an inconsistency
// among them surfaces ErrFatalSeed directly, never invoking the
// backtracker, since there is no decision point to roll back to yet.
func (e *Engine) Start(seed []CellAssignment) error {
	if err := e.guardReentrant(); err != nil {
		return err
	}
	e.state = Running
	e.cfg.logger.Info("engine starting", "cells", e.grid.Len(), "seed", len(seed))

	if len(seed) == 0 {
		return nil
	}

	group := uuid.New()
	touched := make([]int, 0, len(seed))
	for _, s := range seed {
		if err := e.grid.At(s.Cell).CollapseTo(s.Tile); err != nil {
			e.fail(ErrorEvent{Kind: "FatalSeed", Detail: err})
			return fmt.Errorf("%w: %v", ErrFatalSeed, err)
		}
		touched = append(touched, s.Cell)
	}

	e.impliedThisPass = nil
	err := propagate.Run(e.grid, e.oracle, touched, propagate.NopRecorder{}, e)
	if err != nil {
		var contra *propagate.Contradiction
		if errors.As(err, &contra) {
			e.fail(ErrorEvent{Kind: "FatalSeed", Detail: err})
			return fmt.Errorf("%w: %v", ErrFatalSeed, err)
		}
		e.fail(ErrorEvent{Kind: "error", Detail: err})
		return err
	}

	e.emitCollapse(group, append([]CellAssignment{}, seed...), CauseInitial)
	if len(e.impliedThisPass) > 0 {
		e.emitCollapse(group, e.impliedThisPass, CauseImplication)
	}
	return nil
}

// Step performs one scheduling decision: pick the lowest-entropy
// uncollapsed cell, sample a tile for it by weight, commit, propagate,
// and on contradiction invoke the backtracker, retrying until either a
// decision commits cleanly or the engine fails (spec §4.6 `step`).
func (e *Engine) Step() error {
	if err := e.guardReentrant(); err != nil {
		return err
	}
	if e.state == Idle || e.state.Terminal() {
		return ErrNotRunning
	}
	if e.grid.IsComplete() {
		e.state = Done
		e.emitComplete()
		return nil
	}

	for {
		cellIdx := e.pickLowestEntropyCell()
		tileIdx := e.sampleTile(cellIdx)

		e.state = Collapsing
		err := e.commitDecision(cellIdx, tileIdx, CauseEntropy)
		if e.lastErr != nil {
			e.state = Failed
			return e.lastErr
		}
		if err == nil {
			break
		}

		var contra *propagate.Contradiction
		if !errors.As(err, &contra) {
			e.fail(ErrorEvent{Kind: "error", Detail: err})
			return err
		}

		e.state = Backtracking
		if berr := e.backtrackAndRetry(); berr != nil {
			if errors.Is(berr, ErrFatalSeed) {
				e.fail(ErrorEvent{Kind: "FatalSeed", Detail: berr})
			} else {
				e.fail(ErrorEvent{Kind: "Unsatisfiable", Detail: berr})
			}
			return berr
		}
		if e.lastErr != nil {
			e.state = Failed
			return e.lastErr
		}

		if e.grid.IsComplete() {
			e.state = Done
			e.emitComplete()
			return nil
		}
	}

	if e.grid.IsComplete() {
		e.state = Done
		e.emitComplete()
	} else {
		e.state = Running
	}
	return nil
}

// Run iterates Step until the engine reaches Done or Failed, or ctx is
// canceled. Cancellation is checked once per iteration, matching the
// cooperative cancellation model of the corpus's graph walkers
// (spec §5 [FULL]).
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if e.state.Terminal() {
			if e.state == Failed {
				return e.lastErr
			}
			return nil
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
}

func (e *Engine) fail(ev ErrorEvent) {
	e.state = Failed
	e.lastErr = ev.Detail
	e.emitError(ev)
}

// pickLowestEntropyCell returns the index of an uncollapsed cell with
// minimum candidate count, ties broken uniformly via the PRNG (spec
// §4.6).
func (e *Engine) pickLowestEntropyCell() int {
	uncollapsed := e.grid.Uncollapsed()
	best := -1
	var tied []int
	for _, idx := range uncollapsed {
		entropy := e.grid.Cell(idx).Entropy()
		if best == -1 || entropy < e.grid.Cell(best).Entropy() {
			best = idx
			tied = []int{idx}
		} else if entropy == e.grid.Cell(best).Entropy() {
			tied = append(tied, idx)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[rng.UniformIndex(e.cfg.random, len(tied))]
}

func (e *Engine) sampleTile(cellIdx int) int {
	c := e.grid.Cell(cellIdx)
	options := c.Candidates.Slice()
	catalog := e.grid.Catalog()
	return rng.WeightedChoice(e.cfg.random, options, func(t int) float64 {
		return catalog.Tile(t).Weight
	})
}

// commitDecision forces cellIdx to tileIdx, opens a snapshot frame for
// the decision, propagates, and emits the resulting events on success.
func (e *Engine) commitDecision(cellIdx, tileIdx int, cause Cause) error {
	candBefore := e.grid.Cell(cellIdx).Candidates.Clone()
	frame := e.stack.Take(snapshot.Decision{CellIndex: cellIdx, TileIndex: tileIdx, CandidatesBefore: candBefore})
	e.emitSnapshot()

	if err := e.grid.At(cellIdx).CollapseTo(tileIdx); err != nil {
		return err
	}

	e.state = Propagating
	e.impliedThisPass = nil
	touched := &touchingRecorder{frame: frame}
	err := propagate.Run(e.grid, e.oracle, []int{cellIdx}, touched, e)
	if err != nil {
		return err
	}

	e.stack.Commit()
	group := uuid.New()
	e.emitCollapse(group, []CellAssignment{{Cell: cellIdx, Tile: tileIdx}}, cause)
	if len(e.impliedThisPass) > 0 {
		e.emitCollapse(group, e.impliedThisPass, CauseImplication)
	}
	if len(touched.cells) > 0 {
		e.emitPropagate(touched.cells)
	}
	return nil
}

// backtrackAndRetry pops cfg.backtrackStep frames, blacklists each
// popped decision's tile at its cell, and re-propagates to reflect the
// new blacklist, cascading into a further backtrack if that
// re-propagation itself contradicts (spec §4.8).
func (e *Engine) backtrackAndRetry() error {
	var undone []CellAssignment
	var popped []snapshot.Decision

	for i := 0; i < e.cfg.backtrackStep; i++ {
		decision, ok := e.stack.Rollback(e.grid)
		if !ok {
			break
		}
		popped = append(popped, decision)
	}

	group := uuid.New()
	for _, decision := range popped {
		undone = append(undone, CellAssignment{Cell: decision.CellIndex, Tile: decision.TileIndex})

		candBeforeForbid := e.grid.Cell(decision.CellIndex).Candidates.Clone()
		e.grid.At(decision.CellIndex).Forbid(decision.TileIndex)
		frame := e.stack.Take(snapshot.Decision{CellIndex: decision.CellIndex, TileIndex: decision.TileIndex, CandidatesBefore: candBeforeForbid})
		e.emitSnapshot()

		e.impliedThisPass = nil
		err := propagate.Run(e.grid, e.oracle, []int{decision.CellIndex}, frame, e)
		if err != nil {
			var contra *propagate.Contradiction
			if !errors.As(err, &contra) {
				return err
			}
			e.retries++
			if e.retries > e.cfg.maxRetries {
				return ErrUnsatisfiable
			}
			e.emitBacktrack(uuid.New(), undone)
			return e.backtrackAndRetry()
		}
		if len(e.impliedThisPass) > 0 {
			e.emitCollapse(group, e.impliedThisPass, CauseImplication)
		}
	}

	if len(popped) == 0 {
		return ErrFatalSeed
	}

	e.retries++
	if e.retries > e.cfg.maxRetries {
		return ErrUnsatisfiable
	}

	e.emitBacktrack(group, undone)
	return nil
}

// Implied satisfies propagate.Collapsed: it records a cell that
// propagation alone drove down to a single candidate, so it can be
// folded into the next collapse event with cause=implication.
func (e *Engine) Implied(cellIdx, tileIdx int) {
	e.impliedThisPass = append(e.impliedThisPass, CellAssignment{Cell: cellIdx, Tile: tileIdx})
}

// touchingRecorder forwards deltas to a snapshot.Frame while also
// recording which cells were touched, for the PropagateEvent payload.
type touchingRecorder struct {
	frame *snapshot.Frame
	cells []int
}

func (r *touchingRecorder) Record(cellIdx int, removed []int, priorCollapsed bool) {
	r.frame.Record(cellIdx, removed, priorCollapsed)
	r.cells = append(r.cells, cellIdx)
}
