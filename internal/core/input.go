package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform owns the key bindings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter
	ActionBack           // B, Escape - close an overlay
	ActionRestart        // R - new game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Space - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Directional reports whether the action is a movement intent.
func (a Action) Directional() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame holds the actions triggered during one simulation tick.
// When several directions arrive in one frame, the last one wins.
type InputFrame struct {
	actions uint32
	last    Action // most recent directional action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone {
		return
	}
	f.actions |= 1 << uint(a)
	if a.Directional() {
		f.last = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone {
		return false
	}
	return f.actions&(1<<uint(a)) != 0
}

// Direction returns the last directional action of the frame, or ActionNone.
func (f InputFrame) Direction() Action {
	return f.last
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.actions == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
