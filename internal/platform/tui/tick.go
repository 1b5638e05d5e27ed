// Package tui runs the lander on a terminal through Bubble Tea. It owns
// the timers, maps keys to actions and draws the scene with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animInterval paces the explosion after the simulation has stopped.
const animInterval = 60 * time.Millisecond

// tickMsg triggers one simulation tick. gen ties it to the session that
// armed it; ticks from a discarded session are dropped.
type tickMsg struct {
	gen int
}

// animMsg advances scene animations for the session gen.
type animMsg struct {
	gen int
}

// tickCmd arms the next simulation tick.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// animCmd arms the next animation frame.
func animCmd(gen int) tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg {
		return animMsg{gen: gen}
	})
}
