package service

import (
	"math/rand"
	"sync"
)

// lockedSource makes a rand.Source safe for concurrent use. Encounter
// resolution fans narrative calls out across goroutines that all draw from
// the same stream.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewGameRand returns the shared randomness stream for challenge jitter,
// risky-path flips, and template selection. Tests pass a fixed seed to make
// outcomes reproducible.
func NewGameRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed)})
}
