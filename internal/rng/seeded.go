package rng

import (
	"math/rand"
)

// Seeded is a seedable generator for reproducible shuffles and simulations.
// It is not safe for concurrent use; give each goroutine its own instance.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator seeded with the provided value
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}
