// Package xorshift implements the small xorshift64 PRNG named in spec
// section 4.12, used for test-harness randomization (e.g. picking
// between equal-scored moves in self-play) rather than for Zobrist
// hashing, which uses the teacher's seeded math/rand convention
// instead (see internal/zobrist).
package xorshift

// State is a xorshift64 generator. The zero value is invalid — a
// xorshift generator can never recover from an all-zero state, so New
// guards against a zero seed.
type State struct {
	s uint64
}

// New builds a generator from seed. A zero seed is replaced with a
// fixed non-zero constant, since xorshift64 is stuck at zero forever.
func New(seed uint64) *State {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &State{s: seed}
}

// Next returns the next pseudo-random 64-bit value and advances the
// generator's state.
func (g *State) Next() uint64 {
	x := g.s
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.s = x
	return x
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (g *State) Intn(n int) int {
	if n <= 0 {
		panic("xorshift: Intn called with n <= 0")
	}
	return int(g.Next() % uint64(n))
}
