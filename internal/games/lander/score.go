package lander

import (
	"math"

	"github.com/vovakirdan/galactic-lander/internal/core"
)

// FinalScore scores a finished session.
//
// A landing earns 1000 minus the distance from the center line, and any
// landing within 100 units of the center earns the full 1000. A crash
// earns 250 minus the height above the surface, so only ground crashes
// score at all. Scores are truncated and never negative.
func FinalScore(o Outcome, pos core.Vec2, surface float64) int {
	var score float64
	switch o {
	case OutcomeLanded:
		score = 1000 - math.Abs(pos.X)
		if score >= 900 {
			score = 1000
		}
	case OutcomeCrashed:
		score = 250 - math.Abs(pos.Y-surface)
	default:
		return 0
	}
	return max(0, int(score))
}
