package lander

import "github.com/vovakirdan/galactic-lander/internal/core"

// Request tells the platform what to do after an action was handled.
type Request int

const (
	RequestNone    Request = iota
	RequestRestart         // discard the session and start a new one
	RequestQuit            // release the terminal and exit
)

// Handler applies one action to a session.
type Handler func(s *Session) Request

// Controller dispatches actions through a handler table. Unknown actions
// are ignored.
type Controller struct {
	handlers map[core.Action]Handler
}

// NewController creates a controller with the default lander bindings.
func NewController() *Controller {
	c := &Controller{handlers: make(map[core.Action]Handler)}

	c.Register(core.ActionTurnLeft, act((*Session).TurnLeft))
	c.Register(core.ActionTurnRight, act((*Session).TurnRight))
	c.Register(core.ActionTogglePrecision, act((*Session).TogglePrecision))
	c.Register(core.ActionThrustUp, act((*Session).ThrustUp))
	c.Register(core.ActionThrustDown, act((*Session).ThrustDown))
	c.Register(core.ActionToggleEngine, act((*Session).ToggleEngine))
	c.Register(core.ActionRestart, func(*Session) Request { return RequestRestart })
	c.Register(core.ActionQuit, func(*Session) Request { return RequestQuit })

	return c
}

// act adapts a session command that needs nothing from the platform.
func act(f func(*Session)) Handler {
	return func(s *Session) Request {
		f(s)
		return RequestNone
	}
}

// Register binds a handler to an action, replacing any previous one.
func (c *Controller) Register(a core.Action, h Handler) {
	c.handlers[a] = h
}

// Dispatch runs the handler bound to the action.
func (c *Controller) Dispatch(s *Session, a core.Action) Request {
	h, ok := c.handlers[a]
	if !ok {
		return RequestNone
	}
	return h(s)
}

// TurnLeft rotates the lander and its flame counter-clockwise.
func (s *Session) TurnLeft() {
	s.turn(s.lander.TurnRate)
}

// TurnRight rotates the lander and its flame clockwise.
func (s *Session) TurnRight() {
	s.turn(-s.lander.TurnRate)
}

func (s *Session) turn(deg float64) {
	if s.outcome.Terminal() {
		return
	}
	s.lander.Turn(deg)
	s.renderer.SetHeading(s.landerSprite, s.lander.Heading)
	s.renderer.SetHeading(s.flameSprite, s.lander.Heading)
	s.refreshDisplay()
}

// TogglePrecision swaps between the fast and precise turn rates.
func (s *Session) TogglePrecision() {
	if s.outcome.Terminal() {
		return
	}
	if s.lander.TurnRate == s.cfg.Lander.TurnSpeed {
		s.lander.TurnRate = s.cfg.Lander.PreciseTurnSpeed
	} else {
		s.lander.TurnRate = s.cfg.Lander.TurnSpeed
	}
}

// ThrustUp raises thrust by a tenth of the maximum.
func (s *Session) ThrustUp() {
	s.stepThrust(1)
}

// ThrustDown lowers thrust by a tenth of the maximum.
func (s *Session) ThrustDown() {
	s.stepThrust(-1)
}

func (s *Session) stepThrust(dir float64) {
	if s.outcome.Terminal() || s.lander.Fuel <= 0 {
		return
	}
	maxThrust := s.cfg.Physics.MaxThrust
	s.lander.SetThrust(s.lander.Thrust+dir*maxThrust/10, maxThrust)
	s.refreshDisplay()
}

// ToggleEngine switches between full thrust and none.
func (s *Session) ToggleEngine() {
	if s.outcome.Terminal() || s.lander.Fuel <= 0 {
		return
	}
	maxThrust := s.cfg.Physics.MaxThrust
	if s.lander.Thrust != maxThrust {
		s.lander.SetThrust(maxThrust, maxThrust)
	} else {
		s.lander.SetThrust(0, maxThrust)
	}
	s.refreshDisplay()
}

// TurnRate returns the current degrees per turn command.
func (s *Session) TurnRate() float64 {
	return s.lander.TurnRate
}
