package engine

import "time"

// FramePacer enforces the fixed frame budget and produces the clamped step length
type FramePacer struct {
	clock    Clock
	budget   time.Duration
	maxDelta float64
}

// NewFramePacer returns a pacer waiting at least budget between frames and capping
// steps at maxDelta seconds
func NewFramePacer(clock Clock, budget time.Duration, maxDelta float64) *FramePacer {
	return &FramePacer{
		clock:    clock,
		budget:   budget,
		maxDelta: maxDelta,
	}
}

// Wait sleeps until budget has elapsed since last, then returns the clamped step in seconds
// and the timestamp to store as the new last frame
func (p *FramePacer) Wait(last time.Time) (dt float64, now time.Time) {
	deadline := last.Add(p.budget)

	now = p.clock.Now()
	for now.Before(deadline) {
		p.clock.Sleep(deadline.Sub(now))
		now = p.clock.Now()
	}

	return ClampDelta(now.Sub(last), p.maxDelta), now
}

// ClampDelta converts elapsed to seconds, capped at maxDelta
func ClampDelta(elapsed time.Duration, maxDelta float64) float64 {
	dt := elapsed.Seconds()
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}
