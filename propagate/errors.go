package propagate

import (
	"fmt"

	"github.com/katalvlaran/collapse/topology"
)

// Contradiction is raised when a cell's candidate set becomes empty
// during propagation (spec §4.5, §7). It is an internal signal the
// backtracker is expected to catch; callers that see it escape past the
// engine's backtracking layer should treat it as a bug.
type Contradiction struct {
	Index int
	Coord topology.Coord
}

func (c *Contradiction) Error() string {
	return fmt.Sprintf("propagate: contradiction at cell %d %v: candidate set is empty", c.Index, c.Coord)
}
