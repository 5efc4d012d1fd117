package utils

import (
	"math/rand"
	"sync"
	"time"
)

// lockedSource serializes access so one seeded generator can be shared by
// concurrent request handlers.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewRand returns a seedable *rand.Rand safe to share across requests.
func NewRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

// NewTimeSeededRand seeds from the wall clock, for production wiring.
func NewTimeSeededRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}
