// Package oracle precomputes, for every (tile, direction) pair, the set
// of tiles permitted on the opposite side of that edge. It is built once
// from a tile.Catalog and a topology.Topology and never mutated
// afterward, so it is the only structure safe to share read-only across
// engines built from the same catalog+topology (spec §5).
package oracle
