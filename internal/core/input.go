package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers build input frames from whatever source they have (keyboard, scripts,
// tests) and the game only ever sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move the player up
	ActionDown           // move the player down
	ActionLeft           // move the player left
	ActionRight          // move the player right
	ActionStart          // leave the intro and start playing
	ActionPause          // pause/unpause
	ActionRestart        // restart after the round has ended
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
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// ActionForDir returns the movement action matching a direction.
func ActionForDir(d Dir) Action {
	switch d {
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	case DirLeft:
		return ActionLeft
	case DirRight:
		return ActionRight
	default:
		return ActionNone
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameFor creates an input frame with the given actions set.
func FrameFor(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the movement direction requested by this frame.
// When several are set the first of up, down, left, right wins.
func (f InputFrame) Direction() Dir {
	switch {
	case f.Has(ActionUp):
		return DirUp
	case f.Has(ActionDown):
		return DirDown
	case f.Has(ActionLeft):
		return DirLeft
	case f.Has(ActionRight):
		return DirRight
	default:
		return DirNone
	}
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
