package engine

import "github.com/google/uuid"

// Cause distinguishes why a cell was collapsed (spec §4.6).
type Cause string

const (
	CauseInitial      Cause = "initial"
	CauseEntropy      Cause = "entropy"
	CauseImplication  Cause = "implication"
)

// CellAssignment pairs a dense cell index with the tile index it was
// set to, used by collapse and backtrack event payloads.
type CellAssignment struct {
	Cell int
	Tile int
}

// CollapseEvent is emitted whenever one or more cells settle on a
// single tile (spec §4.6, §6). Group correlates every assignment
// produced by the same decision or propagation pass.
type CollapseEvent struct {
	Group uuid.UUID
	Cells []CellAssignment
	Cause Cause
}

// PropagateEvent reports the cells touched by one propagation pass.
type PropagateEvent struct {
	Cells []int
}

// BacktrackEvent is emitted once per rollback, reporting the decisions
// undone (in rollback order) so subscribers can trace which choices
// were retracted.
type BacktrackEvent struct {
	Group uuid.UUID
	Cells []CellAssignment
}

// ErrorEvent is emitted when the engine enters Failed.
type ErrorEvent struct {
	Kind   string
	Detail error
}

// Observer receives engine events synchronously, before the engine's
// next state transition (spec §4.6). Implementations must not call
// back into the engine (Start/Step/Run) from inside any method; doing
// so is caught by a re-entrancy guard and returned to that caller as an
// ErrCallbackFailure.
type Observer interface {
	OnCollapse(CollapseEvent)
	OnPropagate(PropagateEvent)
	OnBacktrack(BacktrackEvent)
	OnSnapshot()
	OnComplete()
	OnError(ErrorEvent)
}

// BaseObserver is a no-op Observer embeddable by callers who only care
// about a subset of events.
type BaseObserver struct{}

func (BaseObserver) OnCollapse(CollapseEvent)   {}
func (BaseObserver) OnPropagate(PropagateEvent) {}
func (BaseObserver) OnBacktrack(BacktrackEvent) {}
func (BaseObserver) OnSnapshot()                {}
func (BaseObserver) OnComplete()                {}
func (BaseObserver) OnError(ErrorEvent)          {}
