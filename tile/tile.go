package tile

import "github.com/katalvlaran/collapse/rule"

// DefaultWeight is used when a Descriptor omits an explicit Weight.
const DefaultWeight = 1.0

// Descriptor is the input record a Catalog is built from. Adjacencies may
// mix raw strings (parsed eagerly by Build) and pre-parsed rule.Rule values
// in any combination, one entry per outgoing edge direction of the target
// topology.
type Descriptor struct {
	// Name uniquely identifies the tile. Required.
	Name string

	// Weight is the relative likelihood of this tile being chosen during
	// weighted sampling. Zero means "use DefaultWeight".
	Weight float64

	// Adjacencies holds one entry per topology edge direction, each either
	// a string (parsed via rule.Parse) or an already-parsed rule.Rule.
	Adjacencies []any

	// Payload is opaque to the catalog and the engine; it is handed back to
	// the caller by reference and never inspected.
	Payload any
}

// Tile is an immutable catalog entry. Index is the tile's dense position
// in [0, N) within its Catalog, used throughout the engine in place of Name.
type Tile struct {
	Index   int
	Name    string
	Weight  float64
	Edges   []rule.Rule
	Payload any
}
