package config

import "fmt"

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the constants describe a playable session.
func (c LanderConfig) Validate() error {
	if c.Timing.TickMillis <= 0 {
		return ValidationError{
			Code:    "INVALID_TICK",
			Message: fmt.Sprintf("tick_ms must be positive, got %d", c.Timing.TickMillis),
		}
	}

	p := c.Physics
	if p.MaxThrust <= 0 || p.FuelCapacity <= 0 || p.FuelUseRate < 0 || p.Gravity < 0 {
		return ValidationError{
			Code:    "INVALID_PHYSICS",
			Message: "max_thrust and fuel_capacity must be positive; gravity and fuel_use_rate must not be negative",
		}
	}

	if c.Lander.TurnSpeed <= 0 || c.Lander.PreciseTurnSpeed <= 0 {
		return ValidationError{
			Code:    "INVALID_TURN_SPEED",
			Message: "turn_speed and precise_turn_speed must be positive",
		}
	}

	l := c.Landing
	if l.CollisionMargin < 0 || l.OrientationMargin < 0 || l.VerticalSpeedMargin < 0 || l.HorizontalSpeedMargin < 0 {
		return ValidationError{
			Code:    "INVALID_MARGIN",
			Message: "landing and collision margins must not be negative",
		}
	}

	o := c.Obstacles
	if o.Count < 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLES",
			Message: fmt.Sprintf("obstacle count must not be negative, got %d", o.Count),
		}
	}
	if o.MinSpeed > o.MaxSpeed || o.MinSpeed < 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLES",
			Message: fmt.Sprintf("obstacle speed range [%d, %d] is empty or negative", o.MinSpeed, o.MaxSpeed),
		}
	}
	if o.Left >= o.Right || o.Bottom > o.Top {
		return ValidationError{
			Code:    "INVALID_CORRIDOR",
			Message: "obstacle corridor bounds are inverted",
		}
	}
	if len(o.Colors) == 0 {
		return ValidationError{
			Code:    "INVALID_OBSTACLES",
			Message: "at least one obstacle color is required",
		}
	}

	w := c.World
	if w.Left >= w.Right || w.Bottom >= w.Top {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: "screen bounds are inverted",
		}
	}
	if w.Surface < w.Bottom || w.Surface >= w.Top {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: fmt.Sprintf("surface %.1f lies outside the screen", w.Surface),
		}
	}
	if w.Stars < 0 {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: fmt.Sprintf("star count must not be negative, got %d", w.Stars),
		}
	}

	return nil
}
