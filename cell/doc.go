// Package cell holds the per-cell mutable state the engine operates on:
// a fixed-width Bitset of candidate tile indices, a collapsed flag, and a
// forbidden set populated by backtracking. Grid owns the flat array of
// Cells for one engine instance; cells are addressed by dense topology
// index, never by pointer, so there are no ownership cycles between a
// cell and its neighbors (spec §9, "cyclic references").
package cell
