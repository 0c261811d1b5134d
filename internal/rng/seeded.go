package rng

import "math/rand"

// Seeded is a deterministic generator. It must only be used by tests and local simulations.
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for a given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rand: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
