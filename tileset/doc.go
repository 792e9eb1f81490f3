// Package tileset loads tile descriptors from a structured document
// (spec §6: "Tileset file format (input, optional)"). It is a thin,
// optional convenience layer outside the solver core: the engine and
// tile.Build never import it.
package tileset
