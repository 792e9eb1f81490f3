// Package propagate implements the worklist-driven arc-consistency pass
// described in spec §4.5: given a cell whose candidates just shrank, it
// visits every in-bounds neighbor, refines the neighbor's candidates
// against the oracle, and repeats until the worklist drains or a cell's
// candidate set becomes empty.
package propagate
