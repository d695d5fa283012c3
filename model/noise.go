package model

import "math/rand"

// noiseSource generates the per-tick Gaussian fluctuation for the
// amplification simulator. Every simulation gets its own source so
// concurrent callers never share rand state.
type noiseSource struct {
	rng    *rand.Rand
	stdDev float64
}

// newNoiseSource creates a seeded noise source. Seed 0 means "not
// reproducible": a random seed is drawn instead, matching the convention
// used for the randomSeed config knob elsewhere in this project.
func newNoiseSource(seed int64, stdDev float64) *noiseSource {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &noiseSource{
		rng:    rand.New(rand.NewSource(seed)),
		stdDev: stdDev,
	}
}

// Sample draws one zero-mean Gaussian value.
func (n *noiseSource) Sample() float64 {
	return n.rng.NormFloat64() * n.stdDev
}
