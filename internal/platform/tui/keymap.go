package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkulagin/mazehunt/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
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

// PointerMapper converts screen cell coordinates into map pixel
// coordinates. The game implements it because only the game knows its
// render transform (camera offset and tile scaling).
type PointerMapper interface {
	ScreenToMap(x, y int) (float64, float64, bool)
}

// MapMouseToFrame updates the input frame's pointer intent from a mouse
// message. Press and drag engage the pointer; release disengages it.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, mapper PointerMapper, frame *core.InputFrame) {
	if mapper == nil {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			return
		}
		if mx, my, ok := mapper.ScreenToMap(msg.X, msg.Y); ok {
			frame.SetPointer(mx, my, true)
		}
	case tea.MouseActionRelease:
		frame.SetPointer(frame.Pointer.X, frame.Pointer.Y, false)
	}
}
