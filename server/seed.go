package server

import (
	"math/rand"
	"sync"
)

// SeedSource hands out per-request seeds. It is the only state shared
// between requests; each request then runs on its own PartitionedRNG.
type SeedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeedSource creates a SeedSource. The same base seed yields the same
// sequence of request seeds.
func NewSeedSource(base int64) *SeedSource {
	return &SeedSource{rng: rand.New(rand.NewSource(base))}
}

// Next returns the seed for the next request. Safe for concurrent use.
func (s *SeedSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}
