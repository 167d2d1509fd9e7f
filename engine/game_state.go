package engine

import (
	"time"

	"github.com/lixenwraith/pong/component"
)

// StopReason records why a session left the running state
type StopReason uint8

const (
	StopNone StopReason = iota
	StopQuitEvent
	StopEscape
	StopBallOut
)

var stopReasonNames = map[StopReason]string{
	StopNone:      "none",
	StopQuitEvent: "quit_event",
	StopEscape:    "escape",
	StopBallOut:   "ball_out",
}

func (r StopReason) String() string {
	return stopReasonNames[r]
}

// GameState is the complete simulation state of one session
// Owned by the game loop; not safe for concurrent use
type GameState struct {
	Left  component.Paddle
	Right component.Paddle

	// Balls in spawn order; only Balls[0] ends the game on leaving the field
	Balls []component.Ball

	// LastFrame is the timestamp of the previous simulation step
	LastFrame time.Time

	running    bool
	stopReason StopReason
}

// NewGameState returns a running state with centered paddles and the given balls
func NewGameState(balls []component.Ball, now time.Time) *GameState {
	return &GameState{
		Left:      component.NewPaddle(component.SideLeft),
		Right:     component.NewPaddle(component.SideRight),
		Balls:     balls,
		LastFrame: now,
		running:   true,
	}
}

// Running reports whether the session is still in the running state
func (s *GameState) Running() bool {
	return s.running
}

// Stop moves the session to the terminal stopped state
// The first reason is kept; stopping again is a no-op
func (s *GameState) Stop(reason StopReason) {
	if !s.running {
		return
	}
	s.running = false
	s.stopReason = reason
}

// StopReason returns why the session stopped, StopNone while running
func (s *GameState) StopReason() StopReason {
	return s.stopReason
}
