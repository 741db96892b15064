package vmath

import "math"

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle maps an angle difference into (-π, π]
// Accumulating wrapped deltas stays continuous when the source angle jumps across ±π
func WrapAngle(a float64) float64 {
	w := math.Mod(a+math.Pi, TwoPi)
	if w <= 0 {
		w += TwoPi
	}
	return w - math.Pi
}

// --- Randomness ---

// FastRand is a xorshift64 generator; deterministic for a given seed
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

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
