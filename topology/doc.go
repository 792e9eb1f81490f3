// Package topology provides the abstract grid capability the engine needs:
// stable coordinate iteration, per-cell neighbor enumeration, and a
// direction-inverse map. Concrete topologies (Square, Triangular, Hexagonal,
// Cube) are the only grid-specific knowledge anywhere in this module —
// everything above this package (oracle, propagator, engine) addresses
// cells purely by dense index, resolving neighbors through Topology.
package topology
