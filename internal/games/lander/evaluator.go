package lander

import (
	"math"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

// Outcome is the session state machine: Flying until the lander either
// crashes or lands. Crashed and Landed are absorbing.
type Outcome int

const (
	OutcomeFlying Outcome = iota
	OutcomeCrashed
	OutcomeLanded
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeFlying:
		return "flying"
	case OutcomeCrashed:
		return "crashed"
	case OutcomeLanded:
		return "landed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (o Outcome) Terminal() bool {
	return o == OutcomeCrashed || o == OutcomeLanded
}

// Collides returns the index of the first obstacle overlapping the lander
// within margin on both axes, or -1.
func Collides(l *Lander, obstacles []Obstacle, margin float64) int {
	for i, o := range obstacles {
		if core.WithinMargin(l.Pos, o.Pos, margin) {
			return i
		}
	}
	return -1
}

// Touchdown classifies ground contact. touched is false while the lander
// is above the surface; safe is true only when heading, vertical speed and
// horizontal speed are all within their margins.
func Touchdown(l *Lander, surface float64, m config.LandingConfig) (touched, safe bool) {
	if l.Pos.Y > surface {
		return false, false
	}
	safe = l.Upright() <= m.OrientationMargin &&
		math.Abs(l.Vel.Y) <= m.VerticalSpeedMargin &&
		math.Abs(l.Vel.X) <= m.HorizontalSpeedMargin
	return true, safe
}
