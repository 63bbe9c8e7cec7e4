package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-labs/internal/core"
)

// Picker is the color control the widget reads from.
// It keeps the last committed color; edits only take effect on Enter.
type Picker struct {
	input textinput.Model
	color string
	err   error
}

// NewPicker creates a picker holding initial. An invalid initial value is
// kept as-is and reported through Err.
func NewPicker(initial string) *Picker {
	ti := textinput.New()
	ti.Prompt = "color> "
	ti.Placeholder = "rgb(r,g,b) or #rrggbb"
	ti.CharLimit = 32
	ti.Width = 24

	p := &Picker{input: ti}
	if err := p.Set(initial); err != nil {
		p.color = strings.TrimSpace(initial)
	}
	return p
}

// Color returns the current color value.
func (p *Picker) Color() string {
	return p.color
}

// Set replaces the current color if value parses.
func (p *Picker) Set(value string) error {
	value = strings.TrimSpace(value)
	if _, err := core.ParseColor(value); err != nil {
		p.err = err
		return err
	}
	p.color = value
	p.err = nil
	return nil
}

// Err returns the last rejected input, if any.
func (p *Picker) Err() error {
	return p.err
}

// Focused reports whether the picker is capturing keys.
func (p *Picker) Focused() bool {
	return p.input.Focused()
}

// Focus starts editing, prefilled with the current color.
func (p *Picker) Focus() tea.Cmd {
	p.input.SetValue(p.color)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Blur stops editing without committing.
func (p *Picker) Blur() {
	p.input.Blur()
	p.err = nil
}

// Update handles a message while the picker is focused.
// Enter commits a valid color, Esc cancels.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if err := p.Set(p.input.Value()); err != nil {
				return nil
			}
			p.input.Blur()
			return nil
		case "esc":
			p.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the picker line.
func (p *Picker) View(s Styles) string {
	if p.input.Focused() {
		line := p.input.View()
		if p.err != nil {
			line += "  " + s.Error.Render(p.err.Error())
		}
		return line
	}
	return fmt.Sprintf("color: %s %s", s.swatch(p.color), p.color)
}
