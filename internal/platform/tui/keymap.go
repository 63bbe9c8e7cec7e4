package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labs/internal/core"
)

// KeyMapper translates Bubble Tea key messages to front-end actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// For ActionPalette, slot is the zero-based palette index.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, slot int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, 0
	case "up", "k":
		return core.ActionUp, 0
	case "down", "j":
		return core.ActionDown, 0
	case "left", "h":
		return core.ActionLeft, 0
	case "right", "l":
		return core.ActionRight, 0
	case "enter", " ", "space":
		return core.ActionClick, 0
	case "d":
		return core.ActionDoubleClick, 0
	case "tab", "c":
		return core.ActionPicker, 0
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return core.ActionPalette, int(key[0] - '1')
	}

	return core.ActionNone, 0
}
