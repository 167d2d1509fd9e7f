package engine

import (
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing
// Sleep advances the mocked time instead of blocking
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration

	// OnSleep, when set, runs after every Sleep with the lock released
	// Advancing the clock from it models oversleeping
	OnSleep func(d time.Duration)
}

// NewMockClock creates a new mock clock with the given start time
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleep records d and advances the mocked time by it
func (m *MockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
	hook := m.OnSleep
	m.mu.Unlock()

	if hook != nil {
		hook(d)
	}
}

// Sleeps returns every duration passed to Sleep so far
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
