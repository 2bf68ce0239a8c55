package core

// Action represents a semantic game action, abstracted from physical key presses.
// The driver delivers at most one Action per loop iteration; ActionNone is the
// implicit timer tick.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter - begin a game, restart after game over
	ActionPause            // P, Escape - pause/unpause
	ActionTerminate        // Q, Ctrl+C - quit and reset
	ActionLeft             // Left arrow, h
	ActionRight            // Right arrow, l
	ActionUp               // Up arrow, k - unused by the brick engine
	ActionDown             // Down arrow, j - hard drop
	ActionRotate           // Space, x - rotate clockwise
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionTerminate:
		return "Terminate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}
