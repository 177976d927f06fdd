package gen

// Source is the pseudo-random stream consumed by every generation step.
// Passing the same seeded Source through a generation produces the same world.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
}

// lcgSource is a 64-bit linear congruential generator.
type lcgSource struct {
	state int64
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed int64) Source {
	return &lcgSource{state: seed ^ 0x5DEECE66D}
}

// Derive returns an independent Source for a sub-generator, salted so that
// sibling passes do not replay the same stream.
func Derive(seed int64, salt int64) Source {
	return NewSource(seed ^ (salt*341873128712 + 132897987541))
}

func (r *lcgSource) next() int64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

func (r *lcgSource) IntN(n int) int {
	v := int(r.next()>>33) % n
	if v < 0 {
		v = -v
	}
	return v
}

func (r *lcgSource) Float64() float64 {
	// Top 53 bits of the state.
	return float64(uint64(r.next())>>11) / (1 << 53)
}
