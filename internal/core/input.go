package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game never sees raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move paddle left / menu cursor left
	ActionRight          // D, Right arrow - move paddle right / menu cursor right
	ActionLaunch         // Space - launch the ball off the paddle
	ActionConfirm        // Enter - start selected level, submit name
	ActionBack           // M, Escape - back to menu
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit
	ActionErase          // Backspace - delete a rune during name entry
	ActionCheat          // F10 - debug skip-ahead, only honored when cheats enabled
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
	case ActionLaunch:
		return "Launch"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionErase:
		return "Erase"
	case ActionCheat:
		return "Cheat"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It carries all actions triggered during the frame plus any printable
// runes typed (consumed only by name entry).
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// Type appends printable runes to this frame's text input.
func (f *InputFrame) Type(runes ...rune) {
	f.Text = append(f.Text, runes...)
}

// Clear resets all actions and typed text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}
