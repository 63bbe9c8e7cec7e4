package core

// Action is a semantic front-end action, abstracted from physical keys.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow, k - move cursor up
	ActionDown               // Down arrow, j - move cursor down
	ActionLeft               // Left arrow, h - move cursor left
	ActionRight              // Right arrow, l - move cursor right
	ActionClick              // Enter, Space - primary click on the cursor cell
	ActionDoubleClick        // d - double-click on the cursor cell
	ActionPicker             // Tab - focus the color picker
	ActionPalette            // 1-9 - select a palette color
	ActionQuit               // q, Ctrl+C
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
	case ActionClick:
		return "Click"
	case ActionDoubleClick:
		return "DoubleClick"
	case ActionPicker:
		return "Picker"
	case ActionPalette:
		return "Palette"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for a directional action.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	}
	return 0, 0
}

// TargetsCell reports whether the action moves the cursor or fires a cell trigger.
func (a Action) TargetsCell() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionClick, ActionDoubleClick:
		return true
	}
	return false
}
