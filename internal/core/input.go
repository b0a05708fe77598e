package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The platform maps raw keys to actions; unrecognized keys map to ActionNone.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveUp                // Up arrow, W
	ActionMoveDown              // Down arrow, S
	ActionMoveLeft              // Left arrow, A
	ActionMoveRight             // Right arrow, D
	ActionPauseToggle           // P
	ActionStartOrRestart        // Enter, Space
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionPauseToggle:
		return "PauseToggle"
	case ActionStartOrRestart:
		return "StartOrRestart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action requests a direction change.
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}
