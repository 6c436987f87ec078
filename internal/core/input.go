package core

import "slices"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter - start a fresh game
	ActionTerminate        // Esc - end the current game
	ActionPause            // P - pause/unpause
	ActionLeft             // Left, H - nudge left
	ActionRight            // Right, L - nudge right
	ActionRotate           // Up, X, Z - rotate clockwise
	ActionSoftDrop         // Down, J - one row down
	ActionHardDrop         // Space - drop and lock
	ActionQuit             // Q, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionTerminate:
		return "Terminate"
	case ActionPause:
		return "Pause"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two ticks, in the
// order they arrived. Repeated presses are kept.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make([]Action, 0, 8)}
}

// Add appends an action to the frame.
func (f *InputFrame) Add(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has reports whether a was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return slices.Contains(f.Actions, a)
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
