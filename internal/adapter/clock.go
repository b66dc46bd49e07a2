package adapter

import "time"

// Clock is the time source of response cache expiry, the login limiter and request log timing.
// Snapshot dates never come from it; they are read from the store.
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current wall time
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) time.Duration
	// LoadLocation resolves an IANA timezone name
	LoadLocation(name string) (*time.Location, error)
}

// RealClock implements Clock using the standard time package
type RealClock struct{}

// NewClock creates a new real clock implementation
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

func (c *RealClock) LoadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
