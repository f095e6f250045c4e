package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow, pointer press on the left half
	ActionRight           // D, Right arrow, pointer press on the right half
	ActionSoftDrop        // S, Down arrow, pointer drag in the lower half
	ActionRotate          // W, Up arrow, Space, pointer release
	ActionUp              // menu navigation
	ActionDown            // menu navigation
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action moves or rotates the active piece.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionLeft, ActionRight, ActionSoftDrop, ActionRotate:
		return true
	}
	return false
}
