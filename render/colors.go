package render

import "github.com/lixenwraith/pong/platform"

var (
	ColorBackground = platform.Color{R: 0, G: 0, B: 255, A: 255}     // Blue
	ColorForeground = platform.Color{R: 255, G: 255, B: 255, A: 255} // White: walls, paddles, balls
)
