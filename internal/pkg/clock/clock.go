package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Timer is a pending callback registered with a Scheduler.
type Timer interface {
	// Stop reports whether the call prevented the callback from running.
	Stop() bool
}

// Scheduler runs callbacks after a delay measured on its own clock.
type Scheduler interface {
	Clock
	After(d time.Duration, fn func()) Timer
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

type RealScheduler struct {
	RealClock
}

func NewRealScheduler() Scheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) After(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
