package util

import (
	"math/rand/v2"
	"sync"
)

// RNG is a process-wide pseudo-random source, seedable for reproducible
// test runs (spec.md §5: "The RNG ... is a process-wide singleton with
// seed(u32) ... accessor[], initialised at program start"). It is grounded
// on the same math/rand/v2 source the teacher's own GenerateRandomInputs
// uses, wrapped so BitWord.Fill (and anything else needing uniform random
// bits) can depend on a small Filler interface instead of math/rand
// directly.
type RNG struct {
	mu  sync.Mutex
	src *rand.ChaCha8
}

var global = NewRNG(0)

// NewRNG constructs a seeded RNG. Two RNGs constructed with the same seed
// produce identical sequences.
func NewRNG(seed uint32) *RNG {
	var key [32]byte

	for i := 0; i < 8; i++ {
		key[4*i] = byte(seed)
		key[4*i+1] = byte(seed >> 8)
		key[4*i+2] = byte(seed >> 16)
		key[4*i+3] = byte(seed >> 24)
	}

	return &RNG{src: rand.NewChaCha8(key)}
}

// Seed reseeds this RNG in place.
func (r *RNG) Seed(seed uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var key [32]byte

	for i := 0; i < 8; i++ {
		key[4*i] = byte(seed)
		key[4*i+1] = byte(seed >> 8)
		key[4*i+2] = byte(seed >> 16)
		key[4*i+3] = byte(seed >> 24)
	}

	r.src = rand.NewChaCha8(key)
}

// Uint64 returns the next uniformly random 64-bit word. Satisfies
// bitword.Filler.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.src.Uint64()
}

// UintN returns a random value in [0,n).
func (r *RNG) UintN(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.src.Uint64() % n
}

// Global returns the process-wide RNG singleton.
func Global() *RNG {
	return global
}

// Seed reseeds the process-wide RNG singleton (spec.md §5 "seed(u32)").
func Seed(seed uint32) {
	global.Seed(seed)
}
