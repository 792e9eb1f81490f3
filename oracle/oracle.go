package oracle

import (
	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/rule"
	"github.com/katalvlaran/collapse/tile"
	"github.com/katalvlaran/collapse/topology"
)

// table is one tile-by-direction adjacency table: table[tileIndex] holds,
// for every direction, the bitset of tiles permitted on the opposite
// side of that edge.
type table [][]cell.Bitset

// Oracle is the precomputed compatibility table `allowed[tile][direction]
// -> set<tile>` described in spec §3/§4.4. It is built once from a
// catalog and topology and never mutated; every Oracle method is safe
// for concurrent read-only use.
type Oracle struct {
	catalog  *tile.Catalog
	numTiles int
	edges    int
	tables   map[string]table // keyed by topology.Orientation; "" for single-orientation grids
}

// Build precomputes the adjacency oracle for catalog over topo. For
// topologies with more than one orientation (currently only Triangular,
// "up"/"down"), one table is built per orientation.
func Build(catalog *tile.Catalog, topo topology.Topology) (*Oracle, error) {
	orientations := collectOrientations(topo)
	o := &Oracle{
		catalog:  catalog,
		numTiles: catalog.Len(),
		edges:    catalog.EdgeCount(),
		tables:   make(map[string]table, len(orientations)),
	}
	for _, orient := range orientations {
		o.tables[orient] = buildTable(catalog, topo)
	}
	return o, nil
}

func collectOrientations(topo topology.Topology) []string {
	seen := map[string]bool{}
	var out []string
	n := topo.CellCount()
	for i := 0; i < n; i++ {
		o := topo.Orientation(i)
		if !seen[o] {
			seen[o] = true
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{topology.DefaultOrientation}
	}
	return out
}

func buildTable(catalog *tile.Catalog, topo topology.Topology) table {
	n := catalog.Len()
	edges := catalog.EdgeCount()
	t := make(table, n)
	for i := 0; i < n; i++ {
		t[i] = make([]cell.Bitset, edges)
		for d := 0; d < edges; d++ {
			t[i][d] = cell.NewBitset(n)
		}
	}

	inv := make([]topology.Direction, edges)
	for d := 0; d < edges; d++ {
		inv[d] = topo.Inverse(topology.Direction(d))
	}

	for i := 0; i < n; i++ {
		ti := catalog.Tile(i)
		for d := 0; d < edges; d++ {
			for j := 0; j < n; j++ {
				tj := catalog.Tile(j)
				if rule.Match(ti.Edges[d], tj.Edges[int(inv[d])]) {
					t[i][d].Set(j)
				}
			}
		}
	}
	return t
}

// Allowed returns the bitset of tile indices permitted on the opposite
// side of tile i's edge d, for the given cell orientation. Returns an
// empty bitset if orientation is unknown (should not happen for a
// topology-consistent caller).
func (o *Oracle) Allowed(tileIdx, direction int, orientation string) cell.Bitset {
	tbl, ok := o.tables[orientation]
	if !ok {
		return cell.NewBitset(o.numTiles)
	}
	return tbl[tileIdx][direction]
}

// NumTiles returns the number of tiles the oracle was built over.
func (o *Oracle) NumTiles() int { return o.numTiles }

// EdgeCount returns the per-cell edge count the oracle was built over.
func (o *Oracle) EdgeCount() int { return o.edges }

// Refine returns the union, over every tile j in neighborCandidates, of
// allowed[j][direction] — the set of tiles permissible on this side given
// the neighbor's remaining options (spec §4.4, `refine`). direction is
// used as given: it must already be the neighbor's edge that faces this
// side, since the oracle holds no topology to invert it.
func (o *Oracle) Refine(direction int, orientation string, neighborCandidates cell.Bitset) cell.Bitset {
	out := cell.NewBitset(o.numTiles)
	neighborCandidates.ForEach(func(j int) {
		out.OrInPlace(o.Allowed(j, direction, orientation))
	})
	return out
}

// RefineSelf returns the subset of selfCandidates whose allowed set on
// direction intersects neighborCandidates — i.e. every self tile that
// still has at least one compatible option on the neighbor's side
// (spec §4.4, `refine_self`).
func (o *Oracle) RefineSelf(direction int, orientation string, selfCandidates, neighborCandidates cell.Bitset) cell.Bitset {
	out := cell.NewBitset(o.numTiles)
	selfCandidates.ForEach(func(i int) {
		if !o.Allowed(i, direction, orientation).And(neighborCandidates).IsEmpty() {
			out.Set(i)
		}
	})
	return out
}
