package lander

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

// Display label names.
const (
	LabelFuel   = "fuel"
	LabelThrust = "thrust"
	LabelResult = "result"
	LabelScore  = "score"
	LabelPrompt = "prompt"
)

// instructions is the briefing shown for the whole session.
var instructions = []string{
	"Pilot the lander to a safe touchdown!",
	"A/D turn, space toggles the engine, =/- trim thrust, / precision.",
	"Land upright and slow. More points closer to the center.",
	"Press enter to restart.",
}

// Session is one play-through from launch to crash or landing. It owns
// all mutable simulation state; a restart discards it and builds a new one.
type Session struct {
	cfg      config.LanderConfig
	lander   Lander
	field    *ObstacleField
	outcome  Outcome
	score    int
	reported bool

	renderer Renderer
	display  Display

	landerSprite    SpriteID
	flameSprite     SpriteID
	obstacleSprites []SpriteID
}

// NewSession builds a fresh session from the constants and seed and
// draws its initial scene. Nil collaborators are replaced with no-ops.
func NewSession(cfg config.LanderConfig, seed int64, r Renderer, d Display) *Session {
	if r == nil {
		r = nopRenderer{}
	}
	if d == nil {
		d = nopDisplay{}
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:      cfg,
		lander:   NewLander(cfg.Lander, cfg.Physics),
		renderer: r,
		display:  d,
	}

	r.SetEnvironment(newEnvironment(cfg.World, rng))
	r.SetBackground(cfg.World.Background)
	s.field = NewObstacleField(cfg.Obstacles, rng)

	s.landerSprite = r.AddSprite(Sprite{
		Shape:   LanderShape,
		Color:   cfg.Lander.Color,
		Scale:   cfg.Lander.Scale,
		Pos:     s.lander.Pos,
		Heading: s.lander.Heading,
		Visible: true,
	})
	s.flameSprite = r.AddSprite(Sprite{
		Shape:   FlameShape,
		Color:   cfg.Lander.FlameColor,
		Scale:   cfg.Lander.Scale,
		Pos:     s.lander.Pos,
		Heading: s.lander.Heading,
	})

	s.obstacleSprites = make([]SpriteID, s.field.Len())
	for i, o := range s.field.Obstacles() {
		s.obstacleSprites[i] = r.AddSprite(Sprite{
			Shape:   o.Variant.Shape,
			Color:   o.Variant.Color,
			Scale:   o.Variant.Scale,
			Pos:     o.Pos,
			Heading: o.Heading(),
			Visible: true,
		})
	}

	s.writeInstructions()
	s.refreshDisplay()
	return s
}

// newEnvironment scatters stars between the surface and the top edge.
func newEnvironment(w config.WorldConfig, rng *rand.Rand) Environment {
	env := Environment{
		Left:         w.Left,
		Right:        w.Right,
		Bottom:       w.Bottom,
		Top:          w.Top,
		Surface:      w.Surface,
		SurfaceColor: w.SurfaceColor,
		Stars:        make([]Star, max(w.Stars, 0)),
	}
	for i := range env.Stars {
		env.Stars[i] = Star{
			Pos: core.Vec2{
				X: w.Left + float64(rng.Intn(int(w.Right-w.Left)+1)),
				Y: w.Surface + float64(rng.Intn(int(w.Top-w.Surface)+1)),
			},
			Size: 1 + rng.Intn(5),
		}
	}
	return env
}

// Tick runs one step of the simulation: integrate the lander, move the
// obstacles, check collisions, check the ground and refresh the readouts.
// It does nothing once the session has ended.
func (s *Session) Tick() Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}

	s.lander.Integrate(s.cfg.Physics, s.cfg.World)
	s.renderer.MoveTo(s.landerSprite, s.lander.Pos)
	s.renderer.MoveTo(s.flameSprite, s.lander.Pos)
	s.renderer.SetVisible(s.flameSprite, s.lander.Thrust != 0)

	s.field.Update()
	for i, o := range s.field.Obstacles() {
		s.renderer.MoveTo(s.obstacleSprites[i], o.Pos)
	}

	s.evaluate()
	s.refreshDisplay()
	return s.outcome
}

// evaluate runs the obstacle check and then the ground check. Both run
// every tick; the first transition out of Flying wins.
func (s *Session) evaluate() {
	if Collides(&s.lander, s.field.Obstacles(), s.cfg.Landing.CollisionMargin) >= 0 {
		s.crash()
	}

	touched, safe := Touchdown(&s.lander, s.cfg.World.Surface, s.cfg.Landing)
	if !touched || s.outcome.Terminal() {
		return
	}
	if safe {
		s.land()
	} else {
		s.crash()
	}
}

func (s *Session) crash() {
	if s.outcome.Terminal() {
		return
	}
	s.outcome = OutcomeCrashed
	s.lander.Thrust = 0
	s.renderer.SetVisible(s.flameSprite, false)
	s.renderer.SetBackground(s.cfg.World.FailureColor)
	s.renderer.SetColor(s.landerSprite, s.cfg.World.FailureColor)
	s.renderer.Explode(s.landerSprite)
}

func (s *Session) land() {
	if s.outcome.Terminal() {
		return
	}
	s.outcome = OutcomeLanded
	s.lander.Heading = 90
	s.lander.Thrust = 0
	s.renderer.SetHeading(s.landerSprite, 90)
	s.renderer.SetHeading(s.flameSprite, 90)
	s.renderer.SetVisible(s.flameSprite, false)
	s.renderer.SetBackground(s.cfg.World.SuccessColor)
}

// refreshDisplay updates the fuel and thrust readouts while flying and
// hands over to the end report once the session is over.
func (s *Session) refreshDisplay() {
	if s.outcome.Terminal() {
		s.report()
		return
	}

	w := s.cfg.World
	s.display.Write(LabelFuel, Label{
		Pos:   core.Vec2{X: w.Left + 25, Y: w.Top - 65},
		Text:  fmt.Sprintf("Fuel: %d%%", int(s.lander.Fuel)),
		Color: w.TextColor,
	})
	s.display.Write(LabelThrust, Label{
		Pos:   core.Vec2{X: w.Left + 25, Y: w.Top - 130},
		Text:  fmt.Sprintf("Thrust: %d%%", s.ThrustPercent()),
		Color: w.TextColor,
	})
}

func instructionLabel(i int) string {
	return fmt.Sprintf("instructions-%d", i)
}

func (s *Session) writeInstructions() {
	w := s.cfg.World
	for i, line := range instructions {
		s.display.Write(instructionLabel(i), Label{
			Pos:   core.Vec2{X: w.Left + 275, Y: w.Top - 45 - 25*float64(i)},
			Text:  line,
			Size:  FontSmall,
			Color: w.TextColor,
		})
	}
}

// report runs once per session: it hides the obstacles, swaps the
// briefing for the result text and scores the outcome.
func (s *Session) report() {
	if s.reported {
		return
	}
	s.reported = true

	for _, id := range s.obstacleSprites {
		s.renderer.SetVisible(id, false)
	}
	for i := range instructions {
		s.display.Clear(instructionLabel(i))
	}

	s.score = FinalScore(s.outcome, s.lander.Pos, s.cfg.World.Surface)

	result := "You crashed!"
	if s.outcome == OutcomeLanded {
		result = "You landed!"
	}

	color := s.cfg.World.TextColor
	s.display.Write(LabelResult, Label{Text: result, Align: AlignCenter, Color: color})
	s.display.Write(LabelScore, Label{
		Pos:   core.Vec2{Y: -50},
		Text:  fmt.Sprintf("Score: %d", s.score),
		Align: AlignCenter,
		Color: color,
	})
	s.display.Write(LabelPrompt, Label{
		Pos:   core.Vec2{Y: -100},
		Text:  "Press enter to restart.",
		Align: AlignCenter,
		Color: color,
	})
}

// ThrustPercent returns the thrust as a whole percentage of the maximum.
func (s *Session) ThrustPercent() int {
	return int(math.Round(s.lander.Thrust / s.cfg.Physics.MaxThrust * 100))
}

// Lander returns a copy of the lander state.
func (s *Session) Lander() Lander {
	return s.lander
}

// Obstacles returns the current obstacles.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Outcome returns the current session state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Score returns the final score, or 0 while flying.
func (s *Session) Score() int {
	return s.score
}

// Config returns the constants the session was built from.
func (s *Session) Config() config.LanderConfig {
	return s.cfg
}
