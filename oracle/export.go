package oracle

import (
	"sort"

	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/tile"
)

// Export serializes the oracle into the nested-map shape named in spec
// §6: `{tile_name: {orientation: {direction_index: [neighbor_name, …]}}}`.
// Neighbor name lists are sorted for deterministic output (spec §8,
// scenario 6: "serializing and reloading yields byte-identical bitsets").
func (o *Oracle) Export() map[string]map[string]map[int][]string {
	out := make(map[string]map[string]map[int][]string, o.numTiles)
	for i := 0; i < o.numTiles; i++ {
		ti := o.catalog.Tile(i)
		perOrient := make(map[string]map[int][]string, len(o.tables))
		for orient, tbl := range o.tables {
			perDir := make(map[int][]string, o.edges)
			for d := 0; d < o.edges; d++ {
				names := make([]string, 0, tbl[i][d].Count())
				tbl[i][d].ForEach(func(j int) {
					names = append(names, o.catalog.Tile(j).Name)
				})
				sort.Strings(names)
				perDir[d] = names
			}
			perOrient[orient] = perDir
		}
		out[ti.Name] = perOrient
	}
	return out
}

// Import reconstructs an Oracle from data previously produced by Export,
// validated against catalog. The topology used to build the original
// oracle is not needed for import: the exported shape already records
// orientation and direction explicitly. Import fails with
// ErrCatalogMismatch if the tile count or any tile name in data does not
// match catalog, and ErrUnknownTileName if an exported neighbor name is
// absent from catalog.
func Import(catalog *tile.Catalog, data map[string]map[string]map[int][]string) (*Oracle, error) {
	if len(data) != catalog.Len() {
		return nil, ErrCatalogMismatch
	}

	o := &Oracle{
		catalog:  catalog,
		numTiles: catalog.Len(),
		edges:    catalog.EdgeCount(),
		tables:   make(map[string]table),
	}

	for name, perOrient := range data {
		i, ok := catalog.IndexOf(name)
		if !ok {
			return nil, ErrCatalogMismatch
		}
		for orient, perDir := range perOrient {
			tbl, ok := o.tables[orient]
			if !ok {
				tbl = make(table, o.numTiles)
				for k := range tbl {
					tbl[k] = make([]cell.Bitset, o.edges)
					for d := range tbl[k] {
						tbl[k][d] = cell.NewBitset(o.numTiles)
					}
				}
				o.tables[orient] = tbl
			}
			for d, names := range perDir {
				for _, nm := range names {
					j, ok := catalog.IndexOf(nm)
					if !ok {
						return nil, ErrUnknownTileName
					}
					tbl[i][d].Set(j)
				}
			}
		}
	}

	return o, nil
}
