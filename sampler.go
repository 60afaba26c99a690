package qsim

import "math/rand/v2"

// Sampler draws uniform samples in [0,1). *rand.Rand satisfies it.
type Sampler interface {
	Float64() float64
}

// NewSampler returns a deterministic PCG-backed sampler for the given seed.
func NewSampler(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func newEntropySampler() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
