package parameter

// Classic (single ball) spawn
const (
	ClassicBallX         = FieldWidth / 2
	ClassicBallY         = FieldHeight / 2
	ClassicBallVelocityX = -200.0
	ClassicBallVelocityY = 235.0
)

// Twin ball spawn
// Y positions are drawn uniformly from [0, TwinSpawnYRange) in whole units
// Vertical speeds are drawn from the inclusive integer ranges below
const (
	TwinBallX       = FieldWidth / 2
	TwinSpawnYRange = 768

	TwinFirstVelocityX    = -200.0
	TwinFirstSpeedYMin    = 100
	TwinFirstSpeedYMax    = 334
	TwinSecondVelocityX   = 200.0
	TwinSecondVelocityYLo = -335
	TwinSecondVelocityYHi = -100
)

// Paddle spawn
const PaddleStartY = FieldHeight / 2
