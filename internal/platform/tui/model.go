package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galactic-lander/internal/config"
	"github.com/vovakirdan/galactic-lander/internal/core"
	"github.com/vovakirdan/galactic-lander/internal/games/lander"
)

// Model is the Bubble Tea model for one player. Key and tick messages
// arrive on the same goroutine, so input handlers and ticks never
// interleave.
type Model struct {
	cfg        config.LanderConfig
	runtime    core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	painter    *Painter
	controller *lander.Controller

	session   *lander.Session
	scheduler *lander.Scheduler
	scene     *Scene
	gen       int // bumped on every restart
	quitting  bool
}

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger for session events. Nil keeps the default,
// which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer binds colors to a lipgloss renderer, as needed for SSH
// sessions whose terminal differs from the server's.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.painter = NewPainter(r) }
}

// NewModel creates a model and its first session.
func NewModel(cfg config.LanderConfig, rt core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:        cfg,
		runtime:    rt,
		logger:     log.New(io.Discard),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		controller: lander.NewController(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.painter == nil {
		m.painter = NewPainter(nil)
	}
	m.help.Width = rt.ScreenW

	m.startSession(rt.Seed)
	return m
}

// startSession discards the current session, if any, and builds a new one.
func (m *Model) startSession(seed int64) {
	m.gen++
	m.scene = NewScene(m.runtime.ScreenW, sceneHeight(m.runtime.ScreenH))
	m.session = lander.NewSession(m.cfg, seed, m.scene, m.scene)
	m.scheduler = lander.NewScheduler(m.session, m.cfg.TickInterval())
	m.logger.Info("session started", "seed", seed, "gen", m.gen)
}

// sceneHeight leaves the last row for the help line.
func sceneHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen, m.scheduler.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.scene.Resize(msg.Width, sceneHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case animMsg:
		if msg.gen != m.gen || !m.scene.Animate() {
			return m, nil
		}
		return m, animCmd(m.gen)
	}

	return m, nil
}

// handleKey dispatches the key's action to the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	switch m.controller.Dispatch(m.session, action) {
	case lander.RequestQuit:
		m.quitting = true
		m.logger.Info("quit", "outcome", m.session.Outcome())
		return m, tea.Quit

	case lander.RequestRestart:
		m.logger.Info("restart", "outcome", m.session.Outcome(), "ticks", m.scheduler.Ticks())
		m.startSession(time.Now().UnixNano())
		return m, tickCmd(m.gen, m.scheduler.Interval())
	}

	return m, nil
}

// handleTick runs one simulation tick and re-arms the timer while the
// session is still flying.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.scheduler.Armed() {
		return m, nil
	}

	if m.scheduler.Fire() {
		return m, tickCmd(m.gen, m.scheduler.Interval())
	}

	l := m.session.Lander()
	m.logger.Info("session over",
		"outcome", m.session.Outcome(),
		"score", m.session.Score(),
		"ticks", m.scheduler.Ticks(),
		"fuel", int(l.Fuel),
		"x", int(l.Pos.X),
	)

	if m.scene.Animating() {
		return m, animCmd(m.gen)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	screen := m.scene.Draw()
	return m.painter.RenderScreen(screen) + "\n" + m.help.View(m.keys)
}

// Session returns the current session.
func (m Model) Session() *lander.Session {
	return m.session
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.LanderConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
