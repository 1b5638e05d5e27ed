package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactic-lander/internal/core"
)

// KeyMap defines the lander key bindings. It centralizes key handling
// and feeds the on-screen help line.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	ThrustUp  key.Binding
	ThrustDn  key.Binding
	Precision key.Binding
	Engine    key.Binding
	Restart   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Engine, k.ThrustUp, k.ThrustDn, k.Precision, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Precision},
		{k.Engine, k.ThrustUp, k.ThrustDn},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "turn right"),
		),
		ThrustUp: key.NewBinding(
			key.WithKeys("=", "+", "up"),
			key.WithHelp("=/↑", "thrust +"),
		),
		ThrustDn: key.NewBinding(
			key.WithKeys("-", "down"),
			key.WithHelp("-/↓", "thrust -"),
		),
		Precision: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "precision"),
		),
		Engine: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "engine"),
		),
		Restart: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("backspace", "q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a lander action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionTurnLeft
	case key.Matches(msg, k.Right):
		return core.ActionTurnRight
	case key.Matches(msg, k.ThrustUp):
		return core.ActionThrustUp
	case key.Matches(msg, k.ThrustDn):
		return core.ActionThrustDown
	case key.Matches(msg, k.Precision):
		return core.ActionTogglePrecision
	case key.Matches(msg, k.Engine):
		return core.ActionToggleEngine
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
