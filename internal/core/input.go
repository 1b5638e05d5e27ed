package core

// Action represents a logical lander command, abstracted from physical
// key presses. The platform maps keys to actions; the simulation only
// ever sees actions.
type Action int

const (
	ActionNone            Action = iota
	ActionTurnLeft               // A, Left arrow - rotate counter-clockwise
	ActionTurnRight              // D, Right arrow - rotate clockwise
	ActionThrustUp               // =, +, Up arrow - raise thrust one step
	ActionThrustDown             // -, Down arrow - lower thrust one step
	ActionTogglePrecision        // / - swap fast and precise turn rate
	ActionToggleEngine           // Space - full thrust on/off
	ActionRestart                // Enter - start a fresh session
	ActionQuit                   // Backspace, Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrustUp:
		return "ThrustUp"
	case ActionThrustDown:
		return "ThrustDown"
	case ActionTogglePrecision:
		return "TogglePrecision"
	case ActionToggleEngine:
		return "ToggleEngine"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
