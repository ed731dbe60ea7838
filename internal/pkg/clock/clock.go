// Package clock is the time source for anything that expires.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Expired reports whether deadline has been reached on c. A record whose
// deadline equals the current instant is already expired.
func Expired(c Clock, deadline time.Time) bool {
	return !c.Now().Before(deadline)
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a settable clock for tests. It may be read from background
// goroutines such as the idempotency sweeper.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
