package rng

import (
	"math/rand"
	"sync"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic generator for reproducible shuffles
// It is safe for concurrent use.
type Seeded struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for a seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rand.Intn(n)
}
