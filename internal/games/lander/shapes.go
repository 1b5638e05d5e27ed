package lander

import "github.com/vovakirdan/galactic-lander/internal/core"

// Shape is a polygon outline in shape coordinates. The +y axis of a shape
// points along the sprite's heading.
type Shape []core.Vec2

// shape builds a Shape from x, y coordinate pairs.
func shape(coords ...float64) Shape {
	s := make(Shape, len(coords)/2)
	for i := range s {
		s[i] = core.Vec2{X: coords[2*i], Y: coords[2*i+1]}
	}
	return s
}

// LanderShape is the craft body with legs and a docking port.
var LanderShape = shape(
	25, -25, 40, -50, 45, -50, 45, -52,
	30, -52, 30, -50, 35, -50, 20, -30,
	10, -30, 15, -40, -15, -40, -10, -30,
	-20, -30, -35, -50, -30, -50, -30, -52,
	-45, -52, -45, -50, -40, -50, -25, -25,
	-35, -15, -35, 15, -25, 25, -29, 26,
	-32, 29, -32, 32, -29, 35, -26, 35,
	-23, 32, -23, 29, -25, 25, -15, 35,
	15, 35, 25, 25, 35, 15, 35, -15,
)

// FlameShape is the exhaust plume drawn under the engine bell.
var FlameShape = shape(
	14, -40, 20, -62, 10, -50, 6, -58,
	0, -50, -4, -60, -6, -50, -18, -58,
	-14, -40,
)

// MeteorShape is the regular obstacle.
var MeteorShape = shape(
	25, -25, 30, 15, 25, 25, 5, 35,
	-25, 25, -30, 0, -25, -25, -15, -30,
)

// TurtleShape is the rare oversized obstacle.
var TurtleShape = shape(
	0, 16, -2, 14, -1, 10, -4, 7,
	-7, 9, -9, 8, -6, 5, -7, 1,
	-5, -3, -8, -6, -6, -8, -4, -5,
	0, -7, 4, -5, 6, -8, 8, -6,
	5, -3, 7, 1, 6, 5, 9, 8,
	7, 9, 4, 7, 1, 10, 2, 14,
)

// CircleShape returns a regular polygon approximating a circle of the
// given radius, used for explosions.
func CircleShape(radius float64, sides int) Shape {
	s := make(Shape, sides)
	for i := range s {
		s[i] = core.Forward(float64(i)*360/float64(sides), radius)
	}
	return s
}
