package snapshot

import "github.com/katalvlaran/collapse/cell"

// Decision identifies one collapse choice: the cell forced, the tile it
// was forced to, and a copy of its candidate set immediately before the
// choice (so rollback can restore it exactly).
type Decision struct {
	CellIndex        int
	TileIndex        int
	CandidatesBefore cell.Bitset
}

// cellDelta is one propagation-caused shrink recorded against a frame:
// the tile indices removed from a cell, and that cell's Collapsed flag
// immediately before the removal.
type cellDelta struct {
	CellIndex      int
	Removed        []int
	PriorCollapsed bool
}

// Frame is one entry on the snapshot stack: a decision plus every cell
// delta propagation produced while applying it. Frame implements
// propagate.Recorder directly, so the propagator can record into the
// currently open frame without this package importing propagate.
type Frame struct {
	Decision Decision
	deltas   []cellDelta
}

// Record appends one cell delta to the frame. It satisfies
// propagate.Recorder's method set by structure, not by import.
func (f *Frame) Record(cellIdx int, removed []int, priorCollapsed bool) {
	f.deltas = append(f.deltas, cellDelta{CellIndex: cellIdx, Removed: removed, PriorCollapsed: priorCollapsed})
}

// Stack is the append-only delta-frame stack of spec §4.7.
type Stack struct {
	frames []*Frame
}

// NewStack returns an empty snapshot stack.
func NewStack() *Stack {
	return &Stack{}
}

// Take opens a new frame for decision and pushes it onto the stack,
// returning it so the caller can pass it to propagate.Run as the
// Recorder for the propagation pass this decision triggers.
func (s *Stack) Take(decision Decision) *Frame {
	f := &Frame{Decision: decision}
	s.frames = append(s.frames, f)
	return f
}

// Commit closes the top frame once its propagation pass has succeeded.
// The frame is already on the stack from Take; Commit exists as an
// explicit lifecycle marker for symmetry with Take/Rollback and as a
// hook for observability.
func (s *Stack) Commit() {}

// Len returns the number of frames currently on the stack.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Rollback pops the top frame, reinstating every tile it removed back
// into the affected cells' candidate sets, restoring their prior
// Collapsed flags, and resetting the decision cell to its pre-decision
// candidate set. It returns the popped frame's Decision so the caller
// (the backtracker) can blacklist the offending tile choice; Rollback
// itself does not touch Forbidden. Returns false if the stack is empty.
func (s *Stack) Rollback(grid *cell.Grid) (Decision, bool) {
	if len(s.frames) == 0 {
		return Decision{}, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]

	for i := len(f.deltas) - 1; i >= 0; i-- {
		d := f.deltas[i]
		c := grid.At(d.CellIndex)
		for _, t := range d.Removed {
			c.Candidates.Set(t)
		}
		c.Collapsed = d.PriorCollapsed
	}

	dc := grid.At(f.Decision.CellIndex)
	dc.Candidates = f.Decision.CandidatesBefore.Clone()
	dc.Collapsed = false

	return f.Decision, true
}
