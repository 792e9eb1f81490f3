package rng

// UniformIndex picks one of n options uniformly at random using source.
// Used to break ties among equally-low-entropy cells (spec §4.6).
func UniformIndex(source Source, n int) int {
	if n <= 1 {
		return 0
	}
	return int(source.Float64() * float64(n))
}

// WeightedChoice samples one index from options using weights (indexed
// the same way as options), proportional to P(t) ∝ weights[t] (spec
// §4.6: "samples one tile from that cell's candidates using weights").
// Falls back to the last option on floating-point rounding at the tail.
func WeightedChoice(source Source, options []int, weights func(tile int) float64) int {
	total := 0.0
	for _, t := range options {
		total += weights(t)
	}
	if total <= 0 {
		return options[UniformIndex(source, len(options))]
	}

	roll := source.Float64() * total
	cumulative := 0.0
	for _, t := range options {
		cumulative += weights(t)
		if roll < cumulative {
			return t
		}
	}
	return options[len(options)-1]
}
