package tileset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/collapse/tile"
)

// rawTile mirrors one entry of the tileset document's "tiles" array.
// Unknown fields are ignored by encoding/json by default.
type rawTile struct {
	Name        *string         `json:"name"`
	Weight      float64         `json:"weight"`
	Adjacencies []string        `json:"adjacencies"`
	Payload     json.RawMessage `json:"payload"`
}

type document struct {
	Tiles []rawTile `json:"tiles"`
}

// Load decodes a tileset document from r into tile descriptors ready
// for tile.Build. Adjacency entries are carried through as strings, to
// be parsed by tile.Build's own string-adjacency handling; Payload is
// preserved as json.RawMessage (opaque to the core, per spec §3).
func Load(r io.Reader) ([]tile.Descriptor, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("tileset: decode: %w", err)
	}

	descriptors := make([]tile.Descriptor, 0, len(doc.Tiles))
	for i, rt := range doc.Tiles {
		if rt.Name == nil || *rt.Name == "" {
			return nil, &LoadError{Index: i, Err: ErrMalformedTile}
		}
		if len(rt.Adjacencies) == 0 {
			return nil, &LoadError{Index: i, TileName: *rt.Name, Err: ErrMalformedTile}
		}

		adjacencies := make([]any, len(rt.Adjacencies))
		for j, a := range rt.Adjacencies {
			adjacencies[j] = a
		}

		var payload any
		if len(rt.Payload) > 0 {
			payload = rt.Payload
		}

		descriptors = append(descriptors, tile.Descriptor{
			Name:        *rt.Name,
			Weight:      rt.Weight,
			Adjacencies: adjacencies,
			Payload:     payload,
		})
	}

	return descriptors, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) ([]tile.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tileset: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
