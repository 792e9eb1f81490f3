// Package engine is the collapser/scheduler and backtracker (spec §4.6,
// §4.8): it owns one grid, one oracle, one snapshot stack, and one PRNG
// source, and drives them through Start/Step/Run to either Complete or
// Failed. It is the only package that wires cell, oracle, propagate,
// snapshot, and rng together.
package engine
