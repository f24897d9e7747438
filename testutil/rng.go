package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bools generates n bits, each set with probability density.
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range n {
		out[i] = r.rand.Float64() < density
	}

	return out
}

// Runs generates n bits as alternating runs of equal bits, each run between
// 1 and maxRun bits long. Runs exercise the word-skipping paths that
// uniformly random bits almost never reach.
func (r *RNG) Runs(n, maxRun int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	v := r.rand.Intn(2) == 1
	for i := 0; i < n; {
		run := 1 + r.rand.Intn(maxRun)
		for ; run > 0 && i < n; run-- {
			out[i] = v
			i++
		}
		v = !v
	}

	return out
}

// Words generates n random words of type W.
func Words[W Unsigned](r *RNG, n int) []W {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]W, n)
	for i := range out {
		out[i] = W(r.rand.Uint64())
	}

	return out
}
