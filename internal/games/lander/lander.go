// Package lander implements the Galactic Lander simulation: a lander
// falls under gravity, steers with discrete thrust and rotation commands,
// dodges a stream of obstacles and must touch down gently and upright.
//
// The package is pure logic. Drawing and text go through the Renderer and
// Display collaborators; timing belongs to the platform, which drives a
// Scheduler.
package lander

import (
	"math"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

// thrustEpsilon absorbs float drift from repeated thrust steps.
const thrustEpsilon = 1e-9

// Lander is the player-controlled craft.
type Lander struct {
	Pos      core.Vec2 // World position, y up
	Vel      core.Vec2 // Displacement over the last tick
	Heading  float64   // Degrees in [0, 360), 90 = upright
	Fuel     float64   // 0..capacity, never increases within a session
	Thrust   float64   // 0..max thrust
	TurnRate float64   // Degrees per turn command
}

// NewLander creates a lander at the configured start state.
func NewLander(spec config.LanderSpec, phys config.PhysicsConfig) Lander {
	return Lander{
		Pos:      core.Vec2{X: spec.StartX, Y: spec.StartY},
		Vel:      core.Vec2{X: spec.StartVX, Y: spec.StartVY},
		Heading:  core.NormalizeDegrees(spec.StartHeading),
		Fuel:     phys.FuelCapacity,
		TurnRate: spec.TurnSpeed,
	}
}

// Integrate advances the lander by one tick.
//
// Gravity lowers the vertical speed, the lander drifts by its velocity,
// and a running engine adds a forward kick of Thrust units along the
// heading while burning fuel. The velocity is then re-derived from the net
// displacement, so the kick carries into the next tick and into the
// landing check. Finally x is held inside the side walls and y below the
// ceiling; the floor is left to the landing check.
func (l *Lander) Integrate(phys config.PhysicsConfig, world config.WorldConfig) {
	start := l.Pos

	l.Vel.Y -= phys.Gravity
	l.Pos = l.Pos.Add(l.Vel)

	if l.Fuel > 0 && l.Thrust != 0 {
		l.Pos = l.Pos.Add(core.Forward(l.Heading, l.Thrust))
		l.burn(phys.FuelUseRate * (l.Thrust / phys.MaxThrust))
	} else {
		l.Thrust = 0
	}

	l.Vel = l.Pos.Sub(start)

	if l.Pos.X < world.Left {
		l.Pos.X = world.Left
		l.Vel.X = 0
	}
	if l.Pos.X > world.Right {
		l.Pos.X = world.Right
		l.Vel.X = 0
	}
	if l.Pos.Y > world.Top {
		l.Pos.Y = world.Top
		l.Vel.Y = 0
	}
}

// burn removes fuel, never going below zero. An empty tank cuts the engine.
func (l *Lander) burn(amount float64) {
	l.Fuel = math.Max(0, l.Fuel-math.Max(0, amount))
	if l.Fuel == 0 {
		l.Thrust = 0
	}
}

// SetThrust stores a commanded thrust clamped to [0, max]. Values within
// float noise of either end snap to it, and an empty tank forces zero.
func (l *Lander) SetThrust(thrust, maxThrust float64) {
	thrust = core.ClampF(thrust, 0, maxThrust)
	if thrust < thrustEpsilon {
		thrust = 0
	}
	if maxThrust-thrust < thrustEpsilon {
		thrust = maxThrust
	}
	if l.Fuel <= 0 {
		thrust = 0
	}
	l.Thrust = thrust
}

// Turn rotates the lander counter-clockwise by deg degrees.
func (l *Lander) Turn(deg float64) {
	l.Heading = core.NormalizeDegrees(l.Heading + deg)
}

// Upright reports how far the heading is from pointing straight up.
func (l *Lander) Upright() float64 {
	return math.Abs(90 - l.Heading)
}
