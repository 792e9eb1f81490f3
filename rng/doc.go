// Package rng defines the PRNG capability the engine depends on (spec
// §6): a Source produces uniform reals in [0,1) and can be reseeded.
// All randomness in the engine flows through this interface; there is
// no implicit global randomness.
package rng
