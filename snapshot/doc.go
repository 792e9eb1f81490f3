// Package snapshot implements the append-only delta-frame stack used for
// backtracking (spec §4.7). Each frame records one decision plus the
// cell deltas propagation produced while applying it, so rollback costs
// O(cells touched) instead of O(N) grid copies (spec §9).
package snapshot
