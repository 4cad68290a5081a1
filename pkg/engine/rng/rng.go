// Package rng provides the seeded random stream used by layout generation.
//
// The stream is a PCG generator from math/rand/v2. Range reduction and float
// conversion are done here rather than through rand.Rand so the values drawn
// for a seed only depend on the PCG algorithm, which is fixed.
package rng

import "math/rand/v2"

// Rand is a deterministic random stream. It is not safe for concurrent use.
type Rand struct {
	src *rand.PCG
}

// New returns a stream seeded from seed
func New(seed int64) *Rand {
	s := uint64(seed)
	return &Rand{src: rand.NewPCG(s, s)}
}

// Uint64 returns the next raw value
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Intn returns a value in [0, n). Returns 0 without drawing if n <= 1.
func (r *Rand) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return int(r.src.Uint64() % uint64(n))
}

// Range returns a value in [lo, hi). Returns lo without drawing if the range
// holds a single value or is empty.
func (r *Rand) Range(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// Float64 returns a value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>11) / (1 << 53)
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}
