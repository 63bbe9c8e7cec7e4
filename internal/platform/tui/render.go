package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-labs/internal/colortable"
	"github.com/vovakirdan/tui-labs/internal/core"
)

// Styles holds the lipgloss styles for one renderer.
// SSH sessions get their own renderer so colors match the client terminal.
type Styles struct {
	renderer *lipgloss.Renderer

	Title  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
	Blank  lipgloss.Style // Cell without a background yet
}

// NewStyles builds the styles for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		renderer: r,
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Status:   r.NewStyle().Foreground(lipgloss.Color("7")),
		Help:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Blank:    r.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
	}
}

// cell renders one cell as a w×h block.
func (s Styles) cell(c *colortable.Cell, w, h int, underCursor bool) string {
	style := s.Blank
	if rgb, err := core.ParseColor(c.Background); err == nil {
		fg := lipgloss.Color("15")
		if rgb.IsLight() {
			fg = lipgloss.Color("0")
		}
		style = s.renderer.NewStyle().Background(lipgloss.Color(rgb.Hex())).Foreground(fg)
	}
	if c.Interactive() {
		style = style.Bold(true)
	}

	text := c.Text
	if underCursor {
		text = "[" + text + "]"
	}

	return style.
		Width(w).
		Height(h).
		MaxWidth(w).
		MaxHeight(h).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(text)
}

// grid renders the whole table, one block per cell, without separators.
func (s Styles) grid(t *colortable.Table, w, h, cursorRow, cursorCol int) string {
	rows := make([]string, 0, len(t.Rows()))
	for i, row := range t.Rows() {
		cells := make([]string, 0, len(row))
		for j, c := range row {
			cells = append(cells, s.cell(c, w, h, i == cursorRow && j == cursorCol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// swatch renders a two-character sample of color.
func (s Styles) swatch(color string) string {
	rgb, err := core.ParseColor(color)
	if err != nil {
		return s.Error.Render("??")
	}
	return s.renderer.NewStyle().Background(lipgloss.Color(rgb.Hex())).Render(strings.Repeat(" ", 2))
}
