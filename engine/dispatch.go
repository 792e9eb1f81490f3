package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// dispatch invokes fn for every subscribed observer. An event emitted
// while another is being delivered is dropped. A panic inside fn is
// recovered, recorded and logged as an ErrCallbackFailure, and moves the
// engine to Failed, so Step and Run return that error; observers receive
// no OnError event for it. A reentrant Start/Step from inside fn is
// rejected by guardReentrant, which returns an ErrCallbackFailure to that
// caller without changing the engine's state (spec §4.6, §7 [FULL]).
func (e *Engine) dispatch(fn func(Observer)) {
	if e.inCallback {
		return
	}
	e.inCallback = true
	defer func() { e.inCallback = false }()

	for _, obs := range e.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.inCallback = false
					e.state = Failed
					cbErr := &ErrCallbackFailure{Err: fmt.Errorf("panic: %v", r)}
					e.lastErr = cbErr
					e.logError(ErrorEvent{Kind: "CallbackFailure", Detail: cbErr})
				}
			}()
			fn(obs)
		}()
	}
}

func (e *Engine) emitCollapse(group uuid.UUID, cells []CellAssignment, cause Cause) {
	ev := CollapseEvent{Group: group, Cells: cells, Cause: cause}
	e.cfg.logger.Info("collapse", "group", group, "cause", cause, "cells", len(cells))
	e.dispatch(func(o Observer) { o.OnCollapse(ev) })
}

func (e *Engine) emitPropagate(cells []int) {
	ev := PropagateEvent{Cells: cells}
	e.cfg.logger.Debug("propagate", "cells", len(cells))
	e.dispatch(func(o Observer) { o.OnPropagate(ev) })
}

func (e *Engine) emitBacktrack(group uuid.UUID, cells []CellAssignment) {
	ev := BacktrackEvent{Group: group, Cells: cells}
	e.cfg.logger.Info("backtrack", "group", group, "cells", len(cells))
	e.dispatch(func(o Observer) { o.OnBacktrack(ev) })
}

// emitSnapshot fires whenever the snapshot stack opens a new frame
// (spec §4.7 "take() opens a new frame"), i.e. once per decision,
// whether that decision comes from Step's entropy pick or from the
// backtracker's post-forbid re-propagation.
func (e *Engine) emitSnapshot() {
	e.cfg.logger.Debug("snapshot")
	e.dispatch(func(o Observer) { o.OnSnapshot() })
}

func (e *Engine) emitComplete() {
	e.cfg.logger.Info("complete")
	e.dispatch(func(o Observer) { o.OnComplete() })
}

func (e *Engine) emitError(ev ErrorEvent) {
	e.logError(ev)
	e.dispatch(func(o Observer) { o.OnError(ev) })
}

func (e *Engine) logError(ev ErrorEvent) {
	e.cfg.logger.Error("engine error", "kind", ev.Kind, "detail", ev.Detail)
}
