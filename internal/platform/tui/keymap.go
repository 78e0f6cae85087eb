package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakbricks/breakbricks/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionLaunch, false
	case "enter":
		return core.ActionConfirm, false
	case "m", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "backspace":
		return core.ActionErase, false
	case "f10":
		return core.ActionCheat, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapTextKey updates an input frame during name entry, where printable
// runes are text rather than movement keys. Only enter, backspace, and
// the quit keys keep their action meaning.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapTextKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "enter":
		frame.Set(core.ActionConfirm)
		return false
	case "backspace":
		frame.Set(core.ActionErase)
		return false
	case "esc":
		frame.Set(core.ActionBack)
		return false
	}

	if msg.Type == tea.KeyRunes {
		frame.Type(msg.Runes...)
	} else if msg.Type == tea.KeySpace {
		frame.Type(' ')
	}
	return false
}
