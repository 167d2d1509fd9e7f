package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// UpdatePaddle moves the paddle along its direction for dt seconds and clamps it
// inside the walls
func UpdatePaddle(p *component.Paddle, dt float64) {
	p.Position.Y += float64(p.Direction) * parameter.PaddleSpeed * dt
	p.Position.Y = vmath.ClampF(p.Position.Y, parameter.PaddleMinY, parameter.PaddleMaxY)
}

// UpdateBall integrates the ball over dt seconds, then resolves paddle hits and wall bounces
// Paddle hits flip horizontal velocity once even if both predicates held; the bands are
// disjoint so this never happens on the standard field
func UpdateBall(b *component.Ball, left, right component.Paddle, dt float64) {
	b.Position = vmath.V2Integrate(b.Position, b.Velocity, dt)

	if HasCollision(*b, left) || HasCollision(*b, right) {
		b.Velocity = vmath.V2ReflectX(b.Velocity)
	}

	BounceWalls(b)
}
