package engine

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/physics"
)

// Simulate advances the state by one step of dt seconds
// Paddles with a direction move first, then balls in order against the moved paddles,
// then the first ball alone decides whether the game is over
func Simulate(s *GameState, dt float64) {
	for _, p := range []*component.Paddle{&s.Left, &s.Right} {
		if p.Direction != 0 {
			physics.UpdatePaddle(p, dt)
		}
	}

	for i := range s.Balls {
		physics.UpdateBall(&s.Balls[i], s.Left, s.Right, dt)
	}

	if len(s.Balls) > 0 && s.Balls[0].OutOfBoundsX() {
		s.Stop(StopBallOut)
	}
}
