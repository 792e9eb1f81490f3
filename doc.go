// Package collapse implements a Wave Function Collapse tile synthesizer:
// a rule grammar and parser for adjacency constraints, a tile catalog, a
// handful of grid topologies (square, triangular, hexagonal, cube), a
// bitset-backed cell/candidate representation, an adjacency oracle built
// once per catalog+topology pair, a worklist arc-consistency propagator,
// a delta-snapshot stack for backtracking, and an entropy-driven
// collapser/scheduler that ties all of the above together.
//
// Subpackages:
//
//	rule/      — adjacency rule grammar: Simple, Negated, Directional, Compound, Choice
//	tile/      — tile catalog: dense indices, weights, per-edge rules, payloads
//	topology/  — grid shapes and their neighbor/orientation/inverse semantics
//	cell/      — bitset candidate sets and the flat cell grid
//	oracle/    — precomputed per-tile-pair-per-direction adjacency tables
//	propagate/ — worklist arc-consistency propagation
//	snapshot/  — delta-frame stack for O(touched) backtracking
//	rng/       — PRNG source abstraction and weighted/uniform sampling
//	tileset/   — JSON tile catalog loader
//	engine/    — the collapser/scheduler, backtracker, and event bus
//
// See SPEC_FULL.md for the full specification this module implements.
package collapse
