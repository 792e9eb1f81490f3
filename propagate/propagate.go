package propagate

import (
	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/oracle"
)

// Recorder receives one call per cell whose candidate set shrinks during
// a propagation pass, so the caller (the snapshot stack) can accumulate
// the delta frame described in spec §4.7. priorCollapsed is the cell's
// Collapsed flag immediately before this shrink; removed is the set of
// tile indices cleared by this particular update.
type Recorder interface {
	Record(cellIdx int, removed []int, priorCollapsed bool)
}

// NopRecorder discards every delta; useful for propagation that does not
// need to support rollback (e.g. oracle equivalence tests).
type NopRecorder struct{}

func (NopRecorder) Record(int, []int, bool) {}

// Collapsed receives notice whenever propagation shrinks a previously
// uncollapsed cell down to exactly one candidate (spec §4.5: "emits a
// collapse event with cause implication").
type Collapsed interface {
	Implied(cellIdx, tileIdx int)
}

// NopCollapsed discards implied-collapse notifications.
type NopCollapsed struct{}

func (NopCollapsed) Implied(int, int) {}

// Run drains worklist, propagating candidate-set shrinkage across grid
// using o, until the worklist empties (success) or a cell's candidates
// become empty (*Contradiction). Propagation is confluent: the final
// candidate sets do not depend on worklist order, though this
// implementation processes it FIFO for predictable event sequencing
// (spec §4.5).
func Run(grid *cell.Grid, o *oracle.Oracle, worklist []int, rec Recorder, col Collapsed) error {
	topo := grid.Topology()
	queue := append([]int(nil), worklist...)
	queued := make(map[int]bool, len(queue))
	for _, i := range queue {
		queued[i] = true
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		queued[idx] = false

		c := grid.At(idx)
		neighbors := topo.Neighbors(idx)

		for _, nb := range neighbors {
			if nb.Index == -1 {
				continue
			}
			neighborCell := grid.At(nb.Index)
			neighborOrientation := topo.Orientation(nb.Index)
			invDir := int(topo.Inverse(nb.Direction))

			refined := o.RefineSelf(invDir, neighborOrientation, neighborCell.Candidates, c.Candidates)

			before := neighborCell.Candidates.Clone()
			priorCollapsed := neighborCell.Collapsed
			shrank := neighborCell.Restrict(refined)
			if !shrank {
				continue
			}

			removed := removedTiles(before, neighborCell.Candidates)
			rec.Record(nb.Index, removed, priorCollapsed)

			if neighborCell.Candidates.IsEmpty() {
				return &Contradiction{Index: nb.Index, Coord: topo.Coord(nb.Index)}
			}

			if neighborCell.Collapsed && !priorCollapsed {
				col.Implied(nb.Index, soleCandidate(neighborCell.Candidates))
			}

			if !queued[nb.Index] {
				queue = append(queue, nb.Index)
				queued[nb.Index] = true
			}
		}
	}

	return nil
}

func removedTiles(before, after cell.Bitset) []int {
	var out []int
	before.ForEach(func(i int) {
		if !after.Has(i) {
			out = append(out, i)
		}
	})
	return out
}

func soleCandidate(b cell.Bitset) int {
	result := -1
	b.ForEach(func(i int) {
		if result == -1 {
			result = i
		}
	})
	return result
}
