// Package clock abstracts wall time. Booking timestamps, webhook signature
// tolerance and the reconciler's confirm time all flow through a Clock so
// tests can pin them to a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the system time; it is what production wiring provides.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until moved with Set or Add. Not safe
// for concurrent use; it exists for tests.
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
