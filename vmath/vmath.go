package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WeightedMidpoint returns (a*wb + b*wa) / (wa + wb)
// Each point is weighted by the other's weight, so the contact point sits nearer the lighter side
func WeightedMidpoint(a Vec2, wa float64, b Vec2, wb float64) Vec2 {
	sum := wa + wb
	if sum == 0 {
		return V2Lerp(a, b, 0.5)
	}
	return Vec2{
		X: (a.X*wb + b.X*wa) / sum,
		Y: (a.Y*wb + b.Y*wa) / sum,
	}
}

// --- Randomness ---

// Rand is the random source consumed by gameplay code
// FastRand satisfies it; tests may substitute a scripted source
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// RandRange draws from [lo, hi) using any Rand
func RandRange(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
