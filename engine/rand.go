package engine

// Rand is a xorshift64 generator for stagger randomization
// Deterministic for a fixed seed, which keeps stagger tests reproducible
type Rand struct {
	state uint64
}

// NewRand creates a generator; a zero seed is remapped to 1
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n)
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Bool returns a uniformly random boolean
func (r *Rand) Bool() bool {
	return r.Next()&1 == 1
}
