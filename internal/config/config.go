// Package config provides YAML-based loading of the lander's startup
// constants: physics tuning, landing margins, obstacle corridor and
// world geometry.
package config

import (
	"time"

	"github.com/vovakirdan/galactic-lander/internal/core"
)

// LanderConfig contains every tunable constant of a session.
// Values are read once at startup; nothing changes them while playing.
type LanderConfig struct {
	Timing    TimingConfig   `yaml:"timing"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Lander    LanderSpec     `yaml:"lander"`
	Landing   LandingConfig  `yaml:"landing"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	World     WorldConfig    `yaml:"world"`
}

// TimingConfig defines the scheduler interval.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// PhysicsConfig defines gravity, engine and fuel parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Downward speed change per tick
	MaxThrust    float64 `yaml:"max_thrust"`    // Forward displacement per tick at full power
	FuelCapacity float64 `yaml:"fuel_capacity"` // Starting fuel
	FuelUseRate  float64 `yaml:"fuel_use_rate"` // Fuel burned per tick at full power
}

// LanderSpec defines the lander's starting state, handling and looks.
type LanderSpec struct {
	StartX           float64    `yaml:"start_x"`
	StartY           float64    `yaml:"start_y"`
	StartHeading     float64    `yaml:"start_heading"` // Degrees, 90 = up
	StartVX          float64    `yaml:"start_vx"`
	StartVY          float64    `yaml:"start_vy"`
	TurnSpeed        float64    `yaml:"turn_speed"`         // Degrees per key press
	PreciseTurnSpeed float64    `yaml:"precise_turn_speed"` // Degrees per key press in precision mode
	Scale            float64    `yaml:"scale"`
	Color            core.Color `yaml:"color"`
	FlameColor       core.Color `yaml:"flame_color"`
}

// LandingConfig defines collision and touchdown tolerances.
type LandingConfig struct {
	CollisionMargin       float64 `yaml:"collision_margin"`
	OrientationMargin     float64 `yaml:"orientation_margin"` // Degrees away from upright
	VerticalSpeedMargin   float64 `yaml:"vertical_speed_margin"`
	HorizontalSpeedMargin float64 `yaml:"horizontal_speed_margin"`
}

// ObstacleConfig defines the obstacle stream and its corridor.
type ObstacleConfig struct {
	Count     int          `yaml:"count"`
	MinSpeed  int          `yaml:"min_speed"`
	MaxSpeed  int          `yaml:"max_speed"`
	Left      float64      `yaml:"left"`
	Right     float64      `yaml:"right"`
	Bottom    int          `yaml:"bottom"`
	Top       int          `yaml:"top"`
	Scale     float64      `yaml:"scale"`
	Colors    []core.Color `yaml:"colors"`
	RareOdds  int          `yaml:"rare_odds"` // 1-in-N chance of the oversized variant
	RareScale float64      `yaml:"rare_scale"`
}

// WorldConfig defines screen bounds, the surface and the palette.
type WorldConfig struct {
	Left         float64    `yaml:"left"`
	Right        float64    `yaml:"right"`
	Bottom       float64    `yaml:"bottom"`
	Top          float64    `yaml:"top"`
	Surface      float64    `yaml:"surface"`
	Stars        int        `yaml:"stars"`
	Background   core.Color `yaml:"background"`
	SurfaceColor core.Color `yaml:"surface_color"`
	SuccessColor core.Color `yaml:"success_color"`
	FailureColor core.Color `yaml:"failure_color"`
	TextColor    core.Color `yaml:"text_color"`
}

// TickInterval returns the scheduler interval as a duration.
func (c LanderConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}
