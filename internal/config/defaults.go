package config

import (
	_ "embed"

	"github.com/vovakirdan/galactic-lander/internal/core"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default configuration.
// It mirrors defaults/lander.yaml and is used if the embedded file cannot
// be parsed.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Timing: TimingConfig{
			TickMillis: 30,
		},
		Physics: PhysicsConfig{
			Gravity:      0.01,
			MaxThrust:    0.025,
			FuelCapacity: 100,
			FuelUseRate:  0.8,
		},
		Lander: LanderSpec{
			StartX:           -200,
			StartY:           300,
			StartHeading:     150,
			StartVX:          2,
			StartVY:          -1,
			TurnSpeed:        10,
			PreciseTurnSpeed: 5,
			Scale:            0.5,
			Color:            core.ColorBlue,
			FlameColor:       core.ColorRed,
		},
		Landing: LandingConfig{
			CollisionMargin:       25,
			OrientationMargin:     30,
			VerticalSpeedMargin:   2.35,
			HorizontalSpeedMargin: 3,
		},
		Obstacles: ObstacleConfig{
			Count:    6,
			MinSpeed: 10,
			MaxSpeed: 30,
			Left:     -425,
			Right:    425,
			Bottom:   -200,
			Top:      200,
			Scale:    0.5,
			Colors: []core.Color{
				core.ColorSteelBlue,
				core.ColorLightGray,
				core.ColorSkyBlue,
				core.ColorSlateGray,
				core.ColorNavy,
			},
			RareOdds:  500,
			RareScale: 2,
		},
		World: WorldConfig{
			Left:         -450,
			Right:        450,
			Bottom:       -350,
			Top:          350,
			Surface:      -300,
			Stars:        50,
			Background:   core.ColorSpace,
			SurfaceColor: core.ColorSilver,
			SuccessColor: core.ColorLightBlue,
			FailureColor: core.ColorRed,
			TextColor:    core.ColorGold,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
