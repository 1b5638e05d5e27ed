package lander

import (
	"math/rand"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

// Variant is the cosmetic look of an obstacle.
type Variant struct {
	Shape Shape
	Color core.Color
	Scale float64
	Rare  bool
}

// Obstacle is a single drifting hazard.
type Obstacle struct {
	Pos     core.Vec2
	Speed   float64 // Signed; the obstacle moves Speed/10 units along x per tick
	Variant Variant
}

// Heading returns the direction of travel in degrees.
func (o Obstacle) Heading() float64 {
	if o.Speed < 0 {
		return 180
	}
	return 0
}

// ObstacleField moves a fixed set of obstacles back and forth across the
// corridor. Obstacles that leave the corridor reappear on one of its
// edges, so the slice never grows or shrinks.
type ObstacleField struct {
	obstacles []Obstacle
	cfg       config.ObstacleConfig
	rng       *rand.Rand
}

// NewObstacleField creates Count obstacles. The first half start on the
// left edge heading right and the rest on the right edge heading left,
// each at a random height with a random speed and variant.
func NewObstacleField(cfg config.ObstacleConfig, rng *rand.Rand) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, cfg.Count),
		cfg:       cfg,
		rng:       rng,
	}

	for i := range f.obstacles {
		speed := float64(cfg.MinSpeed + rng.Intn(cfg.MaxSpeed-cfg.MinSpeed+1))
		x := cfg.Left
		if float64(i) >= float64(cfg.Count)/2 {
			x = cfg.Right
			speed = -speed
		}
		f.obstacles[i] = Obstacle{
			Pos:     core.Vec2{X: x, Y: f.randomY()},
			Speed:   speed,
			Variant: f.randomVariant(),
		}
	}

	return f
}

// randomVariant picks a palette color and, rarely, the oversized shape.
func (f *ObstacleField) randomVariant() Variant {
	v := Variant{
		Shape: MeteorShape,
		Color: f.cfg.Colors[f.rng.Intn(len(f.cfg.Colors))],
		Scale: f.cfg.Scale,
	}
	if f.cfg.RareOdds > 0 && f.rng.Intn(f.cfg.RareOdds) == f.cfg.RareOdds-1 {
		v.Shape = TurtleShape
		v.Scale = f.cfg.RareScale
		v.Rare = true
	}
	return v
}

// randomY returns an integer height inside the vertical corridor.
func (f *ObstacleField) randomY() float64 {
	return float64(f.cfg.Bottom + f.rng.Intn(f.cfg.Top-f.cfg.Bottom+1))
}

// Update moves every obstacle one tick and recycles those that crossed
// a corridor edge. It returns the indices of recycled obstacles.
func (f *ObstacleField) Update() []int {
	var recycled []int
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Pos.X += o.Speed / 10
		if o.Pos.X > f.cfg.Right || o.Pos.X < f.cfg.Left {
			f.recycle(i)
			recycled = append(recycled, i)
		}
	}
	return recycled
}

// recycle puts an obstacle on a random corridor edge at a new height.
// Speed and direction are kept.
func (f *ObstacleField) recycle(i int) {
	o := &f.obstacles[i]
	if f.rng.Intn(2) == 0 {
		o.Pos.X = f.cfg.Left
	} else {
		o.Pos.X = f.cfg.Right
	}
	o.Pos.Y = f.randomY()
}

// Obstacles returns the current obstacles. The slice is owned by the
// field and must not be modified.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
