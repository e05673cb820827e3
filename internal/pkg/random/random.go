package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields samples in [0, 1).
type Source interface {
	Float64() float64
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeeded(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func NewTimeSeeded() Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

func (s *seededSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Fixed always returns the same sample.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}

// Sequence replays its samples in order and wraps around.
type Sequence struct {
	mu      sync.Mutex
	samples []float64
	next    int
}

func NewSequence(samples ...float64) *Sequence {
	return &Sequence{samples: samples}
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.samples) == 0 {
		return 0
	}
	v := s.samples[s.next%len(s.samples)]
	s.next++
	return v
}
