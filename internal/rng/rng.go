// Package rng implements the deterministic PRNG used for daily puzzle
// generation. Given the same string seed it produces the same stream on
// every host, which is what makes "everyone gets the same puzzle today"
// work without any shared state.
package rng

import "errors"

// ErrEmpty is returned when asked to pick from an empty sequence.
var ErrEmpty = errors.New("rng: cannot pick from empty sequence")

// Hash32 collapses a string seed into a 32-bit state with a repeated
// multiply-add over the codepoints. The constant 31 keeps parity with the
// hash the original puzzle generator used, so historical dates keep
// producing the same puzzles.
func Hash32(s string) uint32 {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return h
}

// Rand is a mulberry32 generator. State is a single 32-bit word; it never
// reads the clock or any process state.
type Rand struct {
	state uint32
}

// New seeds a generator from an arbitrary string.
func New(seed string) *Rand {
	return &Rand{state: Hash32(seed)}
}

// NewFromState seeds a generator directly from a 32-bit state.
func NewFromState(state uint32) *Rand {
	return &Rand{state: state}
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state += 0x6d2b79f5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	z ^= z >> 14
	return float64(z) / (1 << 32)
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn with non-positive n")
	}
	return int(r.Float64() * float64(n))
}

// Pick returns a uniformly selected element of xs.
func Pick[T any](r *Rand, xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	return xs[r.Intn(len(xs))], nil
}
