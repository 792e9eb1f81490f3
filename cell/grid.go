package cell

import (
	"github.com/katalvlaran/collapse/tile"
	"github.com/katalvlaran/collapse/topology"
)

// Grid owns the flat array of Cells for one engine instance plus the
// topology and catalog that give those cells meaning. Cells are
// addressed by dense topology index, never by pointer, so a Grid can be
// snapshotted and restored as a slice of values (spec §9).
type Grid struct {
	topo    topology.Topology
	catalog *tile.Catalog
	cells   []Cell
}

// NewGrid allocates a Grid over topo with every cell initialized to the
// full candidate set from catalog.
func NewGrid(topo topology.Topology, catalog *tile.Catalog) *Grid {
	cells := make([]Cell, topo.CellCount())
	for i := range cells {
		cells[i] = New(catalog.Len())
	}
	return &Grid{topo: topo, catalog: catalog, cells: cells}
}

// Topology returns the grid's topology.
func (g *Grid) Topology() topology.Topology { return g.topo }

// Catalog returns the grid's tile catalog.
func (g *Grid) Catalog() *tile.Catalog { return g.catalog }

// Len returns the number of cells in the grid.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns a copy of the cell at index i. Use At for a pointer when
// the caller intends to mutate in place.
func (g *Grid) Cell(i int) Cell { return g.cells[i] }

// At returns a pointer to the cell at index i for in-place mutation by
// the propagator and collapser.
func (g *Grid) At(i int) *Cell { return &g.cells[i] }

// All returns the backing cell slice directly; it is not copied.
func (g *Grid) All() []Cell { return g.cells }

// Uncollapsed returns the indices of cells that have not yet settled on
// a single tile.
func (g *Grid) Uncollapsed() []int {
	out := make([]int, 0)
	for i, c := range g.cells {
		if !c.Collapsed {
			out = append(out, i)
		}
	}
	return out
}

// IsComplete reports whether every cell has collapsed to exactly one
// tile.
func (g *Grid) IsComplete() bool {
	for _, c := range g.cells {
		if !c.Collapsed {
			return false
		}
	}
	return true
}

// HasContradiction reports whether any cell's candidate set is empty.
func (g *Grid) HasContradiction() bool {
	for _, c := range g.cells {
		if c.IsContradiction() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the grid's cell state. Topology and
// catalog are shared by reference since both are immutable after
// construction.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		cells[i] = c.Clone()
	}
	return &Grid{topo: g.topo, catalog: g.catalog, cells: cells}
}

// Restore overwrites the grid's cell state in place from src, which
// must have the same length, keeping the topology/catalog references.
// The copy is shallow: restored cells share their bitsets with src.
func (g *Grid) Restore(src []Cell) {
	copy(g.cells, src)
}
