package lander

import "github.com/vovakirdan/galactic-lander/internal/core"

// SpriteID identifies a sprite created by a Renderer.
type SpriteID int

// Sprite describes a polygon sprite at creation time.
type Sprite struct {
	Shape   Shape
	Color   core.Color
	Scale   float64
	Pos     core.Vec2
	Heading float64
	Visible bool
}

// Star is a single backdrop star.
type Star struct {
	Pos  core.Vec2
	Size int // 1..5
}

// Environment is the static scenery drawn behind every sprite.
type Environment struct {
	Left, Right, Bottom, Top float64
	Surface                  float64
	SurfaceColor             core.Color
	Stars                    []Star
}

// Renderer draws sprites for a session. Implementations keep whatever
// retained state they need; the session only issues commands.
type Renderer interface {
	SetEnvironment(env Environment)
	SetBackground(c core.Color)
	AddSprite(sp Sprite) SpriteID
	MoveTo(id SpriteID, pos core.Vec2)
	SetHeading(id SpriteID, heading float64)
	SetVisible(id SpriteID, visible bool)
	SetColor(id SpriteID, c core.Color)
	// Explode plays a grow-and-hide animation in place of the sprite.
	Explode(id SpriteID)
}

// Align is the horizontal anchor of a text label.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// FontSize selects between headline and body text.
type FontSize int

const (
	FontLarge FontSize = iota
	FontSmall
)

// Label is a piece of text placed at a world position.
type Label struct {
	Pos   core.Vec2
	Text  string
	Align Align
	Size  FontSize
	Color core.Color
}

// Display writes short text labels keyed by name. Writing a name again
// replaces its previous text.
type Display interface {
	Write(name string, l Label)
	Clear(name string)
}

type nopRenderer struct{}

func (nopRenderer) SetEnvironment(Environment) {}
func (nopRenderer) SetBackground(core.Color) {}
func (nopRenderer) AddSprite(Sprite) SpriteID { return 0 }
func (nopRenderer) MoveTo(SpriteID, core.Vec2) {}
func (nopRenderer) SetHeading(SpriteID, float64) {}
func (nopRenderer) SetVisible(SpriteID, bool) {}
func (nopRenderer) SetColor(SpriteID, core.Color) {}
func (nopRenderer) Explode(SpriteID) {}

type nopDisplay struct{}

func (nopDisplay) Write(string, Label) {}
func (nopDisplay) Clear(string) {}
