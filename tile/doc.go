// Package tile defines the immutable Tile record and the Catalog that
// assigns tiles their dense integer indices.
//
// A Catalog is built once from a list of Descriptors and never mutated
// afterward; every other component in this module (the oracle, the grid,
// the engine) refers to tiles by their Catalog index, never by name, once
// construction succeeds.
package tile
