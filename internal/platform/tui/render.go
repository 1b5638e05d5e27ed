package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galactic-lander/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:       lipgloss.Color("196"),
	core.ColorGreen:     lipgloss.Color("34"),
	core.ColorYellow:    lipgloss.Color("226"),
	core.ColorBlue:      lipgloss.Color("33"),
	core.ColorWhite:     lipgloss.Color("15"),
	core.ColorGold:      lipgloss.Color("220"),
	core.ColorSilver:    lipgloss.Color("250"),
	core.ColorNavy:      lipgloss.Color("18"),
	core.ColorSteelBlue: lipgloss.Color("67"),
	core.ColorLightGray: lipgloss.Color("252"),
	core.ColorSkyBlue:   lipgloss.Color("117"),
	core.ColorSlateGray: lipgloss.Color("66"),
	core.ColorLightBlue: lipgloss.Color("153"),
	core.ColorSpace:     lipgloss.Color("233"),
	core.ColorBlack:     lipgloss.Color("16"),
}

// cellStyle is the part of a cell that decides its escape sequence.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

// Painter converts Screen buffers to styled strings. Styles are bound to
// a lipgloss renderer so remote sessions get their own color profile.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. A nil renderer
// uses the process default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (p *Painter) style(cs cellStyle) lipgloss.Style {
	if st, ok := p.styles[cs]; ok {
		return st
	}
	st := p.renderer.NewStyle().Bold(cs.bold)
	if c, ok := palette[cs.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		st = st.Background(c)
	}
	p.styles[cs] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
