package tile

import "github.com/katalvlaran/collapse/rule"

// Catalog is an immutable, order-preserving set of Tiles, each assigned a
// dense index in [0, N) at Build time. A Catalog never mutates after Build
// returns successfully.
type Catalog struct {
	tiles     []Tile
	indexByID map[string]int
	edgeCount int
}

// Build parses and validates descriptors into a Catalog sized for a
// topology with the given per-cell edge count. It rejects duplicate names
// and descriptors whose Adjacencies length differs from edgeCount.
//
// String adjacency entries are parsed eagerly (and are not cached across
// calls — callers that build many catalogs from a shared rule vocabulary
// should cache rule.Parse results themselves and pass rule.Rule values).
func Build(descriptors []Descriptor, edgeCount int) (*Catalog, error) {
	cat := &Catalog{
		tiles:     make([]Tile, 0, len(descriptors)),
		indexByID: make(map[string]int, len(descriptors)),
		edgeCount: edgeCount,
	}

	for i, d := range descriptors {
		if d.Name == "" {
			return nil, &ConfigError{Index: i, Err: ErrEmptyName}
		}
		if _, exists := cat.indexByID[d.Name]; exists {
			return nil, &ConfigError{Index: i, TileName: d.Name, Err: ErrDuplicateName}
		}
		if len(d.Adjacencies) != edgeCount {
			return nil, &ConfigError{Index: i, TileName: d.Name, Err: ErrEdgeCountMismatch}
		}

		weight := d.Weight
		if weight == 0 {
			weight = DefaultWeight
		}
		if weight < 0 {
			return nil, &ConfigError{Index: i, TileName: d.Name, Err: ErrBadWeight}
		}

		edges := make([]rule.Rule, len(d.Adjacencies))
		for j, adj := range d.Adjacencies {
			r, err := toRule(adj)
			if err != nil {
				return nil, &ConfigError{Index: i, TileName: d.Name, Err: err}
			}
			edges[j] = r
		}

		cat.indexByID[d.Name] = len(cat.tiles)
		cat.tiles = append(cat.tiles, Tile{
			Index:   len(cat.tiles),
			Name:    d.Name,
			Weight:  weight,
			Edges:   edges,
			Payload: d.Payload,
		})
	}

	return cat, nil
}

// toRule coerces a mixed Adjacencies entry into a rule.Rule, parsing
// strings and passing pre-parsed rules through untouched.
func toRule(adj any) (rule.Rule, error) {
	switch v := adj.(type) {
	case string:
		r, err := rule.Parse(v)
		if err != nil {
			return nil, err
		}
		return r, nil
	case rule.Rule:
		return v, nil
	default:
		return nil, ErrBadAdjacency
	}
}

// Len returns the number of tiles in the catalog.
func (c *Catalog) Len() int { return len(c.tiles) }

// EdgeCount returns the per-cell edge count this catalog was validated
// against.
func (c *Catalog) EdgeCount() int { return c.edgeCount }

// Tile returns the tile at the given dense index. Panics if idx is out of
// range — callers only ever hold indices the catalog itself produced.
func (c *Catalog) Tile(idx int) Tile { return c.tiles[idx] }

// Tiles returns the tiles in catalog order. The returned slice must not be
// mutated by the caller.
func (c *Catalog) Tiles() []Tile { return c.tiles }

// IndexOf looks up a tile's dense index by name.
func (c *Catalog) IndexOf(name string) (int, bool) {
	idx, ok := c.indexByID[name]
	return idx, ok
}
