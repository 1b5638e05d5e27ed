package lander

import "time"

// Scheduler drives a session at a fixed interval. The platform owns the
// timer: after each tick it arms the next one only if Fire asked for it,
// so the interval is measured from the end of the previous tick and the
// chain stops by itself when the session ends.
type Scheduler struct {
	session  *Session
	interval time.Duration
	ticks    int
}

// NewScheduler creates a scheduler for the session.
func NewScheduler(s *Session, interval time.Duration) *Scheduler {
	return &Scheduler{
		session:  s,
		interval: interval,
	}
}

// Fire runs one tick and reports whether another should be armed.
// Calling Fire after the session has ended does nothing.
func (sc *Scheduler) Fire() bool {
	if sc.session.Outcome().Terminal() {
		return false
	}
	sc.ticks++
	return !sc.session.Tick().Terminal()
}

// Armed reports whether the session still needs ticks.
func (sc *Scheduler) Armed() bool {
	return !sc.session.Outcome().Terminal()
}

// Interval returns the time between ticks.
func (sc *Scheduler) Interval() time.Duration {
	return sc.interval
}

// Ticks returns the number of ticks run so far.
func (sc *Scheduler) Ticks() int {
	return sc.ticks
}

// Session returns the driven session.
func (sc *Scheduler) Session() *Session {
	return sc.session
}
