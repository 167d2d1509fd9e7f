package parameter

import "time"

// Game Loop Timing
const (
	// FrameBudget is the minimum wall-clock interval between two simulation steps (~60 FPS)
	FrameBudget = 16 * time.Millisecond

	// MaxDeltaTime caps the integration step in seconds after a stall
	MaxDeltaTime = 0.05

	// Terminals report presses and auto-repeats only, never releases
	// KeyInitialHoldWindow keeps a fresh press held until the first auto-repeat arrives and
	// must exceed the usual initial repeat delays (console 250ms, desktop 500-660ms)
	KeyInitialHoldWindow = 700 * time.Millisecond

	// KeyRepeatHoldWindow keeps a repeating key held between two repeats
	KeyRepeatHoldWindow = 180 * time.Millisecond
)
