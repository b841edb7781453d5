package core

// Keys is the movement input sampled by the simulation each frame.
// The input layer owns it; the simulation only reads it.
type Keys struct {
	Left  bool
	Right bool
	Jump  bool
}

// Any reports whether any key is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Jump
}

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - run left
	ActionRight          // Right arrow, D, L - run right
	ActionJump           // Up arrow, W, Space - jump on landing
	ActionConfirm        // Enter - leave a cleared pack
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart the current level
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action feeds Keys rather than a command.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}
