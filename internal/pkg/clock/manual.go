package clock

import (
	"sync"
	"time"
)

// ManualScheduler is a logical clock. Time only moves when Advance is called,
// and due callbacks run synchronously on the caller's goroutine.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) After(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, at: s.now.Add(d), seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback whose deadline
// falls inside the window in deadline order (registration order on ties).
// Callbacks scheduled while advancing fire too if they come due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.popDueLocked(target)
		if next == nil {
			if target.After(s.now) {
				s.now = target
			}
			s.mu.Unlock()
			return
		}
		next.fired = true
		if next.at.After(s.now) {
			s.now = next.at
		}
		s.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of callbacks that have not fired or been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *ManualScheduler) popDueLocked(target time.Time) *manualTimer {
	idx := -1
	for i, t := range s.pending {
		if t.at.After(target) {
			continue
		}
		if idx == -1 || t.at.Before(s.pending[idx].at) ||
			(t.at.Equal(s.pending[idx].at) && t.seq < s.pending[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := s.pending[idx]
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			break
		}
	}
	return true
}
