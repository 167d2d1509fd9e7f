package component

import (
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Ball is a free-moving projectile; velocity is in field units per second
type Ball struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}

func NewBall(position, velocity vmath.Vec2) Ball {
	return Ball{Position: position, Velocity: velocity}
}

// Heading returns the side the ball is travelling toward
// A ball with zero horizontal speed heads toward neither side; ok is false
func (b Ball) Heading() (side Side, ok bool) {
	switch {
	case b.Velocity.X < 0:
		return SideLeft, true
	case b.Velocity.X > 0:
		return SideRight, true
	}
	return SideLeft, false
}

// OutOfBoundsX reports whether the ball has left the field horizontally
func (b Ball) OutOfBoundsX() bool {
	return b.Position.X <= 0 || b.Position.X >= parameter.FieldWidth
}
