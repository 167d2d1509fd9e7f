package engine

import "time"

// Clock is the time source of the game loop
// Sleep is the only suspension point of a frame
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock provides the real system time with monotonic clock readings
type MonotonicClock struct{}

// NewMonotonicClock creates a new monotonic clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the calling goroutine for at least d
func (c *MonotonicClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
