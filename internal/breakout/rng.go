package breakout

// Rand is a simple deterministic linear congruential generator.
// Gameplay must be reproducible for a given seed, so the simulation
// never touches math/rand.
type Rand struct {
	state uint64
}

// NewRand creates a new generator with the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{state: uint64(seed)}
}

// Next returns the next raw pseudo-random value.
func (r *Rand) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a pseudo-random int in [lo, hi] inclusive.
func (r *Rand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// FloatRange returns a pseudo-random float64 in [lo, hi).
func (r *Rand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
