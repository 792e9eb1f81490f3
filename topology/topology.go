package topology

// Direction indexes one of a topology's fixed per-cell edge slots. Its
// meaning (which physical direction it represents) is topology-specific;
// Inverse is the only thing callers need to know about it generically.
type Direction int

// Coord is a grid coordinate. Z is unused (always zero) for every
// two-dimensional topology (Square, Triangular, Hexagonal); Cube is the
// only topology that populates it.
type Coord struct {
	X, Y, Z int
}

// Neighbor pairs a direction with the cell it leads to. Index is -1 when
// the neighbor falls outside the grid ("none" in spec terms) — an
// out-of-bounds neighbor imposes no constraint and never prunes candidates.
type Neighbor struct {
	Direction Direction
	Index     int
}

// Topology is the abstract grid capability: cell addressing, neighbor
// enumeration, and the edge-direction inverse map. It is the only
// grid-specific knowledge in the engine; Square, Triangular, Hexagonal,
// and Cube are its concrete variants.
type Topology interface {
	// CellCount returns the total number of cells in the grid.
	CellCount() int

	// EdgeCount returns the fixed number of outgoing edge directions every
	// cell has, regardless of orientation. Tile catalogs built for this
	// topology must declare exactly this many Adjacencies per tile.
	EdgeCount() int

	// Coords returns every cell coordinate in a stable, topology-defined
	// order. The returned slice's index order matches dense cell indices
	// 0..CellCount()-1, i.e. Coords()[i] == Coord(i).
	Coords() []Coord

	// Coord returns the coordinate for a dense cell index.
	Coord(idx int) Coord

	// Index returns the dense cell index for a coordinate, and false if no
	// cell exists there.
	Index(c Coord) (int, bool)

	// Neighbors returns, in a stable order, one entry per outgoing edge
	// direction of the cell at idx. Out-of-bounds neighbors are included
	// with Index == -1.
	Neighbors(idx int) []Neighbor

	// Inverse returns the edge index on a neighbor that faces back toward
	// this cell along direction dir.
	Inverse(dir Direction) Direction

	// Orientation returns the oracle sub-table selector for the cell at
	// idx. Every topology but Triangular uses a single implicit
	// orientation; Triangular returns "up" or "down".
	Orientation(idx int) string
}

// DefaultOrientation is returned by topologies with only one oracle table.
const DefaultOrientation = ""
