package engine

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Variant selects the ball setup of a session
type Variant uint8

const (
	// VariantClassic is a single ball with a fixed launch
	VariantClassic Variant = iota
	// VariantTwin is two balls launched in opposite directions with randomized height and speed
	VariantTwin
)

var variantNames = map[Variant]string{
	VariantClassic: "classic",
	VariantTwin:    "twin",
}

func (v Variant) String() string {
	return variantNames[v]
}

// SpawnBalls creates the initial balls of variant; rng is only consulted for VariantTwin
func SpawnBalls(variant Variant, rng *rand.Rand) []component.Ball {
	if variant != VariantTwin {
		return []component.Ball{
			component.NewBall(
				vmath.V2(parameter.ClassicBallX, parameter.ClassicBallY),
				vmath.V2(parameter.ClassicBallVelocityX, parameter.ClassicBallVelocityY),
			),
		}
	}

	first := component.NewBall(
		vmath.V2(parameter.TwinBallX, float64(rng.Intn(parameter.TwinSpawnYRange))),
		vmath.V2(parameter.TwinFirstVelocityX, float64(intInclusive(rng, parameter.TwinFirstSpeedYMin, parameter.TwinFirstSpeedYMax))),
	)
	second := component.NewBall(
		vmath.V2(parameter.TwinBallX, float64(rng.Intn(parameter.TwinSpawnYRange))),
		vmath.V2(parameter.TwinSecondVelocityX, float64(intInclusive(rng, parameter.TwinSecondVelocityYLo, parameter.TwinSecondVelocityYHi))),
	)
	return []component.Ball{first, second}
}

// intInclusive draws uniformly from [lo, hi]
func intInclusive(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
