package lander

import (
	"testing"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

func newTestSession(t *testing.T, seed int64, mutate func(*config.LanderConfig)) (*Session, *recordingRenderer, *recordingDisplay) {
	t.Helper()
	cfg := config.DefaultLanderConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	r := &recordingRenderer{}
	d := newRecordingDisplay()
	return NewSession(cfg, seed, r, d), r, d
}

// onlyOneObstacle keeps a single obstacle so tests can place it by hand.
func onlyOneObstacle(cfg *config.LanderConfig) {
	cfg.Obstacles.Count = 1
}

// parkObstacles moves every obstacle far away from the landing zone.
func parkObstacles(s *Session) {
	for i := range s.field.obstacles {
		s.field.obstacles[i].Pos = core.Vec2{X: 0, Y: 200}
		s.field.obstacles[i].Speed = 0
	}
}

// setAboutToTouch leaves the lander half a unit above the surface,
// sinking slowly at the given heading.
func setAboutToTouch(s *Session, heading float64) {
	s.lander.Pos = core.Vec2{X: 0, Y: s.cfg.World.Surface + 0.5}
	s.lander.Vel = core.Vec2{X: 0, Y: -0.5}
	s.lander.Heading = heading
	s.lander.Thrust = 0
}

func TestNewSessionInitialScene(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)
	cfg := s.Config()

	if s.Outcome() != OutcomeFlying {
		t.Errorf("Outcome() = %v, want flying", s.Outcome())
	}
	if r.background != cfg.World.Background {
		t.Errorf("background = %v, want %v", r.background, cfg.World.Background)
	}
	if len(r.env.Stars) != cfg.World.Stars {
		t.Errorf("stars = %d, want %d", len(r.env.Stars), cfg.World.Stars)
	}
	for i, st := range r.env.Stars {
		if st.Pos.Y < cfg.World.Surface || st.Pos.Y > cfg.World.Top || st.Size < 1 || st.Size > 5 {
			t.Errorf("star %d = %+v outside the sky", i, st)
		}
	}

	// Lander, flame, then one sprite per obstacle.
	if want := 2 + cfg.Obstacles.Count; len(r.sprites) != want {
		t.Fatalf("sprites = %d, want %d", len(r.sprites), want)
	}
	if !r.sprites[s.landerSprite].Visible {
		t.Error("lander sprite hidden at start")
	}
	if r.sprites[s.flameSprite].Visible {
		t.Error("flame visible with the engine off")
	}

	if got := d.text(LabelFuel); got != "Fuel: 100%" {
		t.Errorf("fuel label = %q, want %q", got, "Fuel: 100%")
	}
	if got := d.text(LabelThrust); got != "Thrust: 0%" {
		t.Errorf("thrust label = %q, want %q", got, "Thrust: 0%")
	}
	if got := d.text("instructions-0"); got != instructions[0] {
		t.Errorf("instructions-0 = %q, want %q", got, instructions[0])
	}
	if _, ok := d.labels[LabelResult]; ok {
		t.Error("result label written before the session ended")
	}
}

func TestSessionSafeLanding(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)
	parkObstacles(s)
	setAboutToTouch(s, 95)

	if got := s.Tick(); got != OutcomeLanded {
		t.Fatalf("Tick() = %v, want landed", got)
	}

	if s.Lander().Heading != 90 {
		t.Errorf("Heading = %v, want snapped to 90", s.Lander().Heading)
	}
	if r.sprites[s.landerSprite].Heading != 90 {
		t.Errorf("lander sprite heading = %v, want 90", r.sprites[s.landerSprite].Heading)
	}
	if r.background != s.cfg.World.SuccessColor {
		t.Errorf("background = %v, want %v", r.background, s.cfg.World.SuccessColor)
	}
	if len(r.exploded) != 0 {
		t.Errorf("exploded %v on a landing", r.exploded)
	}
	if s.Score() != 1000 {
		t.Errorf("Score() = %d, want 1000", s.Score())
	}

	want := map[string]string{
		LabelResult: "You landed!",
		LabelScore:  "Score: 1000",
		LabelPrompt: "Press enter to restart.",
	}
	for name, text := range want {
		if got := d.text(name); got != text {
			t.Errorf("%s label = %q, want %q", name, got, text)
		}
	}
}

func TestSessionTiltedTouchdownCrashes(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)
	parkObstacles(s)
	setAboutToTouch(s, 45)

	if got := s.Tick(); got != OutcomeCrashed {
		t.Fatalf("Tick() = %v, want crashed", got)
	}

	if r.background != s.cfg.World.FailureColor {
		t.Errorf("background = %v, want %v", r.background, s.cfg.World.FailureColor)
	}
	if len(r.exploded) != 1 || r.exploded[0] != s.landerSprite {
		t.Errorf("exploded = %v, want [%d]", r.exploded, s.landerSprite)
	}
	if r.sprites[s.flameSprite].Visible {
		t.Error("flame visible after a crash")
	}
	if c := r.sprites[s.landerSprite].Color; c != s.cfg.World.FailureColor {
		t.Errorf("lander color = %v, want %v before exploding", c, s.cfg.World.FailureColor)
	}
	// 0.01 below the surface after the final tick.
	if s.Score() != 249 {
		t.Errorf("Score() = %d, want 249", s.Score())
	}
	if got := d.text(LabelResult); got != "You crashed!" {
		t.Errorf("result label = %q, want %q", got, "You crashed!")
	}
}

func TestSessionLandingMarginsIndependent(t *testing.T) {
	tests := []struct {
		name string
		set  func(l *Lander)
	}{
		{"orientation", func(l *Lander) { l.Heading = 90 + 30.01 }},
		{"vertical speed", func(l *Lander) { l.Vel.Y = -2.36 }},
		{"horizontal speed", func(l *Lander) { l.Vel.X = 3.01 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newTestSession(t, 1, nil)
			parkObstacles(s)
			setAboutToTouch(s, 90)
			tt.set(&s.lander)

			// Evaluate in place so the flipped quantity is exactly what
			// the evaluator sees.
			s.lander.Pos.Y = s.cfg.World.Surface
			s.evaluate()

			if s.Outcome() != OutcomeCrashed {
				t.Errorf("Outcome() = %v, want crashed when only %s is out of range", s.Outcome(), tt.name)
			}
		})
	}
}

func TestSessionCollisionWinsOverLanding(t *testing.T) {
	s, r, _ := newTestSession(t, 1, onlyOneObstacle)
	setAboutToTouch(s, 90)
	// One step left of the lander; it moves onto it this tick.
	s.field.obstacles[0] = Obstacle{Pos: core.Vec2{X: -1, Y: s.cfg.World.Surface}, Speed: 10}

	if got := s.Tick(); got != OutcomeCrashed {
		t.Fatalf("Tick() = %v, want crashed", got)
	}
	for _, c := range r.backgrounds {
		if c == s.cfg.World.SuccessColor {
			t.Errorf("success background set after a collision")
		}
	}
}

func TestSessionCollisionInFlight(t *testing.T) {
	s, r, _ := newTestSession(t, 1, onlyOneObstacle)
	s.lander.Pos = core.Vec2{X: 0, Y: 0}
	s.lander.Vel = core.Vec2{}
	s.field.obstacles[0] = Obstacle{Pos: core.Vec2{X: -26, Y: 0}, Speed: 20}

	if got := s.Tick(); got != OutcomeCrashed {
		t.Fatalf("Tick() = %v, want crashed", got)
	}
	if !(s.Lander().Pos.Y > s.cfg.World.Surface) {
		t.Errorf("lander at %+v, want mid-air", s.Lander().Pos)
	}
	if len(r.exploded) != 1 {
		t.Errorf("exploded = %v, want one explosion", r.exploded)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0 for a mid-air crash", s.Score())
	}
}

func TestSessionTerminalIsIdempotent(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)
	parkObstacles(s)
	setAboutToTouch(s, 45)
	s.Tick()

	before := s.Lander()
	positions := make([]core.Vec2, len(s.Obstacles()))
	for i, o := range s.Obstacles() {
		positions[i] = o.Pos
	}
	backgrounds := len(r.backgrounds)

	c := NewController()
	for i := 0; i < 10; i++ {
		s.Tick()
		for _, a := range []core.Action{
			core.ActionTurnLeft,
			core.ActionTurnRight,
			core.ActionThrustUp,
			core.ActionThrustDown,
			core.ActionToggleEngine,
			core.ActionTogglePrecision,
		} {
			c.Dispatch(s, a)
		}
	}

	if after := s.Lander(); after != before {
		t.Errorf("lander changed after the end: %+v -> %+v", before, after)
	}
	for i, o := range s.Obstacles() {
		if o.Pos != positions[i] {
			t.Errorf("obstacle %d moved after the end: %+v -> %+v", i, positions[i], o.Pos)
		}
	}
	if s.Outcome() != OutcomeCrashed {
		t.Errorf("Outcome() = %v, want crashed", s.Outcome())
	}
	if len(r.backgrounds) != backgrounds {
		t.Errorf("background changed after the end")
	}
	if d.writes[LabelResult] != 1 || d.writes[LabelScore] != 1 {
		t.Errorf("report written %d/%d times, want once", d.writes[LabelResult], d.writes[LabelScore])
	}
}

func TestSessionReportHidesObstacles(t *testing.T) {
	s, r, _ := newTestSession(t, 1, nil)
	parkObstacles(s)
	setAboutToTouch(s, 90)
	s.Tick()

	for i, id := range s.obstacleSprites {
		if r.sprites[id].Visible {
			t.Errorf("obstacle sprite %d still visible after the end", i)
		}
	}
}

func TestSessionReportReplacesInstructions(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)
	parkObstacles(s)
	setAboutToTouch(s, 90)
	s.Tick()

	for i := range instructions {
		if _, ok := d.labels[instructionLabel(i)]; ok {
			t.Errorf("%s still shown after the end", instructionLabel(i))
		}
	}
	if _, ok := d.labels[LabelResult]; !ok {
		t.Error("result label missing")
	}
	if c := r.sprites[s.landerSprite].Color; c != s.cfg.Lander.Color {
		t.Errorf("lander color = %v after a landing, want %v", c, s.cfg.Lander.Color)
	}
}

func TestNewSessionNegativeStarCount(t *testing.T) {
	s, r, _ := newTestSession(t, 1, func(cfg *config.LanderConfig) {
		cfg.World.Stars = -1
	})

	if len(r.env.Stars) != 0 {
		t.Errorf("stars = %d, want 0", len(r.env.Stars))
	}
	if s.Outcome() != OutcomeFlying {
		t.Errorf("Outcome() = %v, want flying", s.Outcome())
	}
}

func TestSessionFlameFollowsThrust(t *testing.T) {
	s, r, d := newTestSession(t, 1, nil)

	s.ToggleEngine()
	if got := d.text(LabelThrust); got != "Thrust: 100%" {
		t.Errorf("thrust label = %q, want %q", got, "Thrust: 100%")
	}
	s.Tick()
	if !r.sprites[s.flameSprite].Visible {
		t.Error("flame hidden with the engine running")
	}
	if r.sprites[s.flameSprite].Pos != s.Lander().Pos {
		t.Errorf("flame at %+v, lander at %+v", r.sprites[s.flameSprite].Pos, s.Lander().Pos)
	}
	if got := d.text(LabelFuel); got != "Fuel: 99%" {
		t.Errorf("fuel label = %q, want %q", got, "Fuel: 99%")
	}

	s.ToggleEngine()
	s.Tick()
	if r.sprites[s.flameSprite].Visible {
		t.Error("flame visible with the engine off")
	}
}

func TestSessionDeterministicForSeed(t *testing.T) {
	a, ra, _ := newTestSession(t, 1234, nil)
	b, rb, _ := newTestSession(t, 1234, nil)

	for i := range ra.env.Stars {
		if ra.env.Stars[i] != rb.env.Stars[i] {
			t.Fatalf("star %d differs for the same seed", i)
		}
	}

	for tick := 0; tick < 150; tick++ {
		if tick == 20 {
			a.ToggleEngine()
			b.ToggleEngine()
		}
		a.Tick()
		b.Tick()
	}

	if a.Lander() != b.Lander() {
		t.Errorf("landers diverged: %+v vs %+v", a.Lander(), b.Lander())
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i].Pos != b.Obstacles()[i].Pos {
			t.Errorf("obstacle %d diverged", i)
		}
	}
	if a.Outcome() != b.Outcome() {
		t.Errorf("outcomes diverged: %v vs %v", a.Outcome(), b.Outcome())
	}
}

// A restart builds a new session; nothing from the old one survives.
func TestRestartResetsState(t *testing.T) {
	old, _, _ := newTestSession(t, 1, nil)
	old.ToggleEngine()
	old.TogglePrecision()
	for old.Tick() == OutcomeFlying {
	}

	fresh, _, d := newTestSession(t, 2, nil)
	cfg := fresh.Config()
	l := fresh.Lander()

	if fresh.Outcome() != OutcomeFlying {
		t.Errorf("Outcome() = %v, want flying", fresh.Outcome())
	}
	if l.Pos != (core.Vec2{X: cfg.Lander.StartX, Y: cfg.Lander.StartY}) {
		t.Errorf("Pos = %+v, want start position", l.Pos)
	}
	if l.Heading != cfg.Lander.StartHeading || l.Fuel != cfg.Physics.FuelCapacity || l.Thrust != 0 {
		t.Errorf("lander = %+v, want start heading, full tank, engine off", l)
	}
	if fresh.TurnRate() != cfg.Lander.TurnSpeed {
		t.Errorf("TurnRate() = %v, want %v", fresh.TurnRate(), cfg.Lander.TurnSpeed)
	}
	if _, ok := d.labels[LabelResult]; ok {
		t.Error("fresh session shows a result")
	}

	same := true
	for i, o := range fresh.Obstacles() {
		prev := old.Obstacles()[i]
		if o.Speed != prev.Speed || o.Pos.Y != prev.Pos.Y {
			same = false
		}
	}
	if same {
		t.Error("fresh session reused the previous obstacle layout")
	}
}
