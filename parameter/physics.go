package parameter

// Playfield geometry in field units
const (
	FieldWidth    = 1024.0
	FieldHeight   = 768.0
	WallThickness = 15.0
)

// Paddle geometry and motion
const (
	PaddleHeight     = 100.0
	PaddleHalfHeight = PaddleHeight / 2
	PaddleWidth      = WallThickness

	// PaddleSpeed is in field units per second
	PaddleSpeed = 300.0

	PaddleLeftX  = 10.0
	PaddleRightX = 1000.0

	// Vertical travel limits of a paddle center
	PaddleMinY = PaddleHalfHeight + WallThickness
	PaddleMaxY = FieldHeight - PaddleHalfHeight - WallThickness
)

// Collision bands: x-range where a ball registers a hit against each paddle
// Left band is 5 units wide and right band 24; the asymmetry is kept as-is
const (
	LeftBandMinX  = 20.0
	LeftBandMaxX  = 25.0
	RightBandMinX = 1000.0
	RightBandMaxX = FieldWidth
)

// Wall bounce thresholds for the ball center
const (
	TopWallY    = WallThickness
	BottomWallY = FieldHeight - WallThickness
)

// Ball geometry
const (
	BallSize = WallThickness

	// BallHalfSize is the integer half of BallSize used to center the drawn square
	BallHalfSize = 7
)
