package lander

import "github.com/vovakirdan/galactic-lander/internal/core"

// recordingRenderer keeps the last state of every sprite for assertions.
type recordingRenderer struct {
	env         Environment
	background  core.Color
	backgrounds []core.Color
	sprites     []Sprite
	exploded    []SpriteID
}

func (r *recordingRenderer) SetEnvironment(env Environment) { r.env = env }

func (r *recordingRenderer) SetBackground(c core.Color) {
	r.background = c
	r.backgrounds = append(r.backgrounds, c)
}

func (r *recordingRenderer) AddSprite(sp Sprite) SpriteID {
	r.sprites = append(r.sprites, sp)
	return SpriteID(len(r.sprites) - 1)
}

func (r *recordingRenderer) MoveTo(id SpriteID, pos core.Vec2) { r.sprites[id].Pos = pos }
func (r *recordingRenderer) SetHeading(id SpriteID, heading float64) { r.sprites[id].Heading = heading }
func (r *recordingRenderer) SetVisible(id SpriteID, visible bool) { r.sprites[id].Visible = visible }
func (r *recordingRenderer) SetColor(id SpriteID, c core.Color) { r.sprites[id].Color = c }
func (r *recordingRenderer) Explode(id SpriteID) { r.exploded = append(r.exploded, id) }

// recordingDisplay keeps the current text of every label and counts writes.
type recordingDisplay struct {
	labels map[string]Label
	writes map[string]int
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{
		labels: make(map[string]Label),
		writes: make(map[string]int),
	}
}

func (d *recordingDisplay) Write(name string, l Label) {
	d.labels[name] = l
	d.writes[name]++
}

func (d *recordingDisplay) Clear(name string) {
	delete(d.labels, name)
}

func (d *recordingDisplay) text(name string) string {
	return d.labels[name].Text
}
