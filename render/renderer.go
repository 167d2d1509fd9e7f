package render

import (
	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/platform"
)

// Renderer draws a frame of the field onto a surface
type Renderer struct {
	surface platform.Surface
}

func NewRenderer(surface platform.Surface) *Renderer {
	return &Renderer{surface: surface}
}

// RenderFrame clears the back buffer, draws walls, paddles and balls, then presents
func (r *Renderer) RenderFrame(left, right component.Paddle, balls []component.Ball) {
	r.surface.Clear(ColorBackground)
	r.surface.SetDrawColor(ColorForeground)

	for _, wall := range WallRects() {
		r.surface.FillRect(wall)
	}

	r.surface.FillRect(PaddleRect(left))
	r.surface.FillRect(PaddleRect(right))

	for _, b := range balls {
		r.surface.FillRect(BallRect(b))
	}

	r.surface.Present()
}

// WallRects returns the top and bottom wall bars
func WallRects() [2]platform.Rect {
	thickness := int(parameter.WallThickness)
	return [2]platform.Rect{
		{X: 0, Y: 0, W: int(parameter.FieldWidth), H: thickness},
		{X: 0, Y: int(parameter.FieldHeight) - thickness, W: int(parameter.FieldWidth), H: thickness},
	}
}

// PaddleRect returns the paddle body; Position.X is the left edge, Position.Y the center
func PaddleRect(p component.Paddle) platform.Rect {
	return platform.Rect{
		X: int(p.Position.X),
		Y: int(p.Top()),
		W: int(parameter.PaddleWidth),
		H: int(parameter.PaddleHeight),
	}
}

// BallRect returns the ball square centered on its position
func BallRect(b component.Ball) platform.Rect {
	return platform.Rect{
		X: int(b.Position.X - parameter.BallHalfSize),
		Y: int(b.Position.Y - parameter.BallHalfSize),
		W: int(parameter.BallSize),
		H: int(parameter.BallSize),
	}
}
