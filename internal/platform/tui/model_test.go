package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
)

func newTestModel() Model {
	return NewModel(config.DefaultLanderConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesSession(t *testing.T) {
	m := newTestModel()
	if m.Init() == nil {
		t.Fatal("Init() returned no tick command")
	}

	start := m.Session().Lander().Pos
	m, cmd := update(t, m, tickMsg{gen: m.gen})
	if cmd == nil {
		t.Error("tick while flying did not re-arm")
	}
	if m.scheduler.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", m.scheduler.Ticks())
	}
	if m.Session().Lander().Pos == start {
		t.Error("lander did not move")
	}
}

func TestModelRestartDropsStaleTicks(t *testing.T) {
	m := newTestModel()
	old := m.Session()
	oldGen := m.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("restart did not arm a tick")
	}
	if m.Session() == old {
		t.Fatal("restart kept the old session")
	}
	if m.gen == oldGen {
		t.Fatal("restart kept the old generation")
	}

	m, cmd = update(t, m, tickMsg{gen: oldGen})
	if cmd != nil {
		t.Error("stale tick re-armed the timer")
	}
	if m.scheduler.Ticks() != 0 {
		t.Errorf("stale tick ran the new session: Ticks() = %d", m.scheduler.Ticks())
	}

	m, _ = update(t, m, tickMsg{gen: m.gen})
	if m.scheduler.Ticks() != 1 {
		t.Errorf("current tick ignored: Ticks() = %d", m.scheduler.Ticks())
	}
}

func TestModelRunsToTerminalAndStops(t *testing.T) {
	m := newTestModel()

	for i := 0; !m.Session().Outcome().Terminal(); i++ {
		if i > 10000 {
			t.Fatal("session never ended")
		}
		m, _ = update(t, m, tickMsg{gen: m.gen})
	}

	if m.scheduler.Armed() {
		t.Error("scheduler still armed after the end")
	}
	ticks := m.scheduler.Ticks()

	m, cmd := update(t, m, tickMsg{gen: m.gen})
	if cmd != nil {
		t.Error("tick after the end re-armed the timer")
	}
	if m.scheduler.Ticks() != ticks {
		t.Errorf("Ticks() = %d after the end, want %d", m.scheduler.Ticks(), ticks)
	}
}

func TestModelKeysReachSession(t *testing.T) {
	m := newTestModel()
	heading := m.Session().Lander().Heading

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if cmd != nil {
		t.Error("turn key returned a command")
	}
	if m.Session().Lander().Heading == heading {
		t.Error("turn key did not rotate the lander")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Session().ThrustPercent() != 100 {
		t.Errorf("ThrustPercent() = %d after space, want 100", m.Session().ThrustPercent())
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("unbound key returned a command")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := newTestModel()

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("View() has %d lines, want 24", len(lines))
	}
	if !strings.Contains(m.View(), "Fuel: 100%") {
		t.Error("View() is missing the fuel readout")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	screen := m.scene.Draw()
	if screen.Width() != 120 || screen.Height() != 39 {
		t.Errorf("scene = %dx%d, want 120x39", screen.Width(), screen.Height())
	}
}
