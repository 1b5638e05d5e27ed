package tui

import (
	"math"

	"github.com/vovakirdan/galactic-lander/internal/core"
	"github.com/vovakirdan/galactic-lander/internal/games/lander"
)

// Explosion tuning, in frames and world units.
const (
	explosionFrames = 12
	explosionGrowth = 6.0
	explosionSides  = 12
)

// starRunes are indexed by star size - 1.
var starRunes = []rune{'.', '·', '+', '*', '✶'}

type explosion struct {
	pos   core.Vec2
	color core.Color
	frame int
}

// span is a run of columns already taken by a label on one row.
type span struct{ from, to int }

// Scene is the terminal implementation of the lander Renderer and
// Display. It keeps sprites and labels in world coordinates and maps them
// onto a cell grid when drawn, so a resize never touches the session.
type Scene struct {
	screen     *core.Screen
	env        lander.Environment
	background core.Color
	sprites    []lander.Sprite
	explosions []explosion

	labels map[string]lander.Label
	order  []string // first-write order, for stable layout
}

// NewScene creates a scene drawn onto a width x height grid.
func NewScene(width, height int) *Scene {
	return &Scene{
		screen: core.NewScreen(max(width, 1), max(height, 1)),
		labels: make(map[string]lander.Label),
	}
}

// Resize changes the grid size.
func (sc *Scene) Resize(width, height int) {
	sc.screen.Resize(max(width, 1), max(height, 1))
}

// Screen returns the cell grid of the last Draw.
func (sc *Scene) Screen() *core.Screen {
	return sc.screen
}

// The methods below implement lander.Renderer and lander.Display. Sprite
// commands with an unknown id are ignored.

// SetEnvironment replaces the static scenery.
func (sc *Scene) SetEnvironment(env lander.Environment) { sc.env = env }

// SetBackground sets the backdrop color.
func (sc *Scene) SetBackground(c core.Color) { sc.background = c }

// AddSprite stores a sprite and returns its id.
func (sc *Scene) AddSprite(sp lander.Sprite) lander.SpriteID {
	sc.sprites = append(sc.sprites, sp)
	return lander.SpriteID(len(sc.sprites) - 1)
}

// MoveTo places a sprite at a world position.
func (sc *Scene) MoveTo(id lander.SpriteID, pos core.Vec2) {
	if sp := sc.sprite(id); sp != nil {
		sp.Pos = pos
	}
}

// SetHeading turns a sprite.
func (sc *Scene) SetHeading(id lander.SpriteID, heading float64) {
	if sp := sc.sprite(id); sp != nil {
		sp.Heading = heading
	}
}

// SetVisible shows or hides a sprite.
func (sc *Scene) SetVisible(id lander.SpriteID, visible bool) {
	if sp := sc.sprite(id); sp != nil {
		sp.Visible = visible
	}
}

// SetColor changes a sprite's fill color.
func (sc *Scene) SetColor(id lander.SpriteID, c core.Color) {
	if sp := sc.sprite(id); sp != nil {
		sp.Color = c
	}
}

// Explode hides the sprite and starts a growing burst in its place.
func (sc *Scene) Explode(id lander.SpriteID) {
	sp := sc.sprite(id)
	if sp == nil {
		return
	}
	sp.Visible = false
	sc.explosions = append(sc.explosions, explosion{pos: sp.Pos, color: sp.Color})
}

func (sc *Scene) sprite(id lander.SpriteID) *lander.Sprite {
	if id < 0 || int(id) >= len(sc.sprites) {
		return nil
	}
	return &sc.sprites[id]
}

// Write adds or replaces a named label.
func (sc *Scene) Write(name string, l lander.Label) {
	if _, ok := sc.labels[name]; !ok {
		sc.order = append(sc.order, name)
	}
	sc.labels[name] = l
}

// Clear removes a named label.
func (sc *Scene) Clear(name string) {
	if _, ok := sc.labels[name]; !ok {
		return
	}
	delete(sc.labels, name)
	for i, n := range sc.order {
		if n == name {
			sc.order = append(sc.order[:i], sc.order[i+1:]...)
			break
		}
	}
}

// Animate advances running explosions by one frame and drops finished
// ones. It reports whether any animation is still running.
func (sc *Scene) Animate() bool {
	live := sc.explosions[:0]
	for _, e := range sc.explosions {
		e.frame++
		if e.frame < explosionFrames {
			live = append(live, e)
		}
	}
	sc.explosions = live
	return len(sc.explosions) > 0
}

// Animating reports whether an explosion is in progress.
func (sc *Scene) Animating() bool {
	return len(sc.explosions) > 0
}

// toCell maps a world point to fractional cell coordinates.
func (sc *Scene) toCell(p core.Vec2) core.Vec2 {
	w := sc.env.Right - sc.env.Left
	h := sc.env.Top - sc.env.Bottom
	if w <= 0 || h <= 0 {
		return core.Vec2{}
	}
	return core.Vec2{
		X: (p.X - sc.env.Left) / w * float64(sc.screen.Width()),
		Y: (sc.env.Top - p.Y) / h * float64(sc.screen.Height()),
	}
}

// cellOf returns the integer cell containing a world point.
func (sc *Scene) cellOf(p core.Vec2) (int, int) {
	c := sc.toCell(p)
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// Draw renders the whole scene onto the cell grid: backdrop, stars,
// surface, border, sprites, explosions and labels, in that order.
func (sc *Scene) Draw() *core.Screen {
	s := sc.screen
	s.Clear()
	s.FillBackground(sc.background)

	for _, st := range sc.env.Stars {
		x, y := sc.cellOf(st.Pos)
		s.SetColored(x, y, starRunes[core.Clamp(st.Size, 1, len(starRunes))-1], core.ColorWhite)
	}

	if sc.env.Top > sc.env.Bottom {
		_, top := sc.cellOf(core.Vec2{Y: sc.env.Surface})
		top = core.Clamp(top, 0, s.Height())
		s.DrawRect(core.NewRect(0, top, s.Width(), s.Height()-top), '▒', sc.env.SurfaceColor)
	}
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorWhite)

	for _, sp := range sc.sprites {
		if sp.Visible {
			sc.drawShape(sp.Shape, sp.Scale, sp.Pos, sp.Heading, '█', sp.Color)
		}
	}

	for _, e := range sc.explosions {
		radius := explosionGrowth * float64(e.frame+1)
		sc.drawShape(lander.CircleShape(radius, explosionSides), 1, e.pos, 90, '*', e.color)
	}

	sc.drawLabels()
	return s
}

// drawShape places a shape at pos, turned so its +y axis follows heading.
func (sc *Scene) drawShape(shape lander.Shape, scale float64, pos core.Vec2, heading float64, r rune, c core.Color) {
	points := make([]core.Vec2, len(shape))
	for i, p := range shape {
		points[i] = sc.toCell(p.Scale(scale).Rotate(heading - 90).Add(pos))
	}
	sc.screen.FillPolygon(points, r, c)
}

// drawLabels writes labels in first-write order. A label that would
// overlap an earlier one on the same row moves down a row.
func (sc *Scene) drawLabels() {
	s := sc.screen
	taken := make(map[int][]span)

	for _, name := range sc.order {
		l := sc.labels[name]
		n := len([]rune(l.Text))
		x, y := sc.cellOf(l.Pos)
		if l.Align == lander.AlignCenter {
			x -= n / 2
		}
		x = core.Clamp(x, 1, core.Max(1, s.Width()-n-1))
		y = core.Clamp(y, 1, core.Max(1, s.Height()-2))

		for overlaps(taken[y], x, x+n) && y < s.Height()-2 {
			y++
		}
		taken[y] = append(taken[y], span{from: x, to: x + n})

		if l.Size == lander.FontLarge {
			s.DrawBoldText(x, y, l.Text, l.Color)
		} else {
			s.DrawText(x, y, l.Text, l.Color)
		}
	}
}

func overlaps(spans []span, from, to int) bool {
	for _, sp := range spans {
		if from < sp.to && sp.from < to {
			return true
		}
	}
	return false
}
