package physics

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Band returns the inclusive x-range in which a ball can register a hit on the
// paddle guarding side
func Band(side component.Side) (minX, maxX float64) {
	if side == component.SideRight {
		return parameter.RightBandMinX, parameter.RightBandMaxX
	}
	return parameter.LeftBandMinX, parameter.LeftBandMaxX
}

// HasCollision reports whether ball is striking paddle this frame
// All of: vertical offset within the paddle half-height, ball inside the paddle's band,
// ball travelling toward the paddle's side. Pure, no side effects
func HasCollision(ball component.Ball, paddle component.Paddle) bool {
	if vmath.AbsF(paddle.Position.Y-ball.Position.Y) > parameter.PaddleHalfHeight {
		return false
	}

	minX, maxX := Band(paddle.Side)
	if !vmath.InRangeF(ball.Position.X, minX, maxX) {
		return false
	}

	heading, ok := ball.Heading()
	return ok && heading == paddle.Side
}

// BounceWalls flips the ball's vertical velocity when it touches the top or bottom wall
// while moving into it. At most one wall triggers per call. Returns true on a bounce
func BounceWalls(ball *component.Ball) bool {
	if ball.Position.Y <= parameter.TopWallY && ball.Velocity.Y < 0 {
		ball.Velocity = vmath.V2ReflectY(ball.Velocity)
		return true
	} else if ball.Position.Y >= parameter.BottomWallY && ball.Velocity.Y > 0 {
		ball.Velocity = vmath.V2ReflectY(ball.Velocity)
		return true
	}
	return false
}
