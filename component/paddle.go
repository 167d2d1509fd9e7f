package component

import (
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Paddle is a vertically moving bat anchored to one side of the field
// Position is the paddle center; Position.X never changes after construction
type Paddle struct {
	Position vmath.Vec2
	// Direction is the input intent for the current frame: -1 up, 0 idle, 1 down
	Direction int
	Side      Side
}

// NewPaddle returns an idle paddle centered vertically at its side's anchor column
func NewPaddle(side Side) Paddle {
	x := parameter.PaddleLeftX
	if side == SideRight {
		x = parameter.PaddleRightX
	}
	return Paddle{
		Position: vmath.V2(x, parameter.PaddleStartY),
		Side:     side,
	}
}

// Top returns the y coordinate of the paddle's upper edge
func (p Paddle) Top() float64 {
	return p.Position.Y - parameter.PaddleHalfHeight
}
