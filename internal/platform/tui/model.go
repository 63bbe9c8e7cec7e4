// Package tui provides the Bubble Tea front end for the color table: grid
// rendering, mouse and keyboard mapping, the color picker and SSH serving.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-labs/internal/colortable"
	"github.com/vovakirdan/tui-labs/internal/config"
	"github.com/vovakirdan/tui-labs/internal/core"
)

// gridTop is the screen row of the first grid line: a title line, then a blank line.
const gridTop = 2

// Model is the Bubble Tea model for the color table.
type Model struct {
	cfg       config.ColorTableConfig
	runtime   core.RuntimeConfig
	table     *colortable.Table
	widget    *colortable.Widget
	picker    *Picker
	styles    Styles
	keyMapper *KeyMapper
	logger    *log.Logger
	now       func() time.Time

	cursorRow int
	cursorCol int
	hovered   int // Id of the cell under the pointer, 0 when none

	lastClickID int
	lastClickAt time.Time

	status   string
	quitting bool
}

// ModelOption customizes a Model.
type ModelOption func(*modelOptions)

type modelOptions struct {
	renderer *lipgloss.Renderer
	logger   *log.Logger
	now      func() time.Time
	intn     colortable.IntN
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(o *modelOptions) { o.renderer = r }
}

// WithLogger sets the logger interactions are reported to.
func WithLogger(l *log.Logger) ModelOption {
	return func(o *modelOptions) { o.logger = l }
}

// WithClock sets the time source used for double-click detection.
func WithClock(now func() time.Time) ModelOption {
	return func(o *modelOptions) { o.now = now }
}

// WithRand sets the random source for hover colors.
func WithRand(intn colortable.IntN) ModelOption {
	return func(o *modelOptions) { o.intn = intn }
}

// NewModel builds the table, the picker and the widget.
func NewModel(cfg config.ColorTableConfig, rt core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	o := modelOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("invalid config: %w", err)
	}
	if rt.DoubleClickInterval <= 0 {
		rt.DoubleClickInterval = cfg.DoubleClickInterval()
	}

	table := colortable.NewTable()
	picker := NewPicker(cfg.Picker.InitialColor)

	var widgetOpts []colortable.Option
	if o.intn != nil {
		widgetOpts = append(widgetOpts, colortable.WithRand(o.intn))
	}
	widget, err := colortable.New(table, picker, cfg.Widget(), widgetOpts...)
	if err != nil {
		return Model{}, err
	}

	o.logger.Debug("color table ready",
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"target", widget.Target().ID,
	)

	return Model{
		cfg:       cfg,
		runtime:   rt,
		table:     table,
		widget:    widget,
		picker:    picker,
		styles:    NewStyles(o.renderer),
		keyMapper: NewKeyMapper(),
		logger:    o.logger,
		now:       o.now,
		status:    fmt.Sprintf("cell %d is interactive", widget.Target().ID),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		return m, nil
	}

	if m.picker.Focused() {
		return m, m.picker.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.picker.Focused() {
		before := m.picker.Color()
		cmd := m.picker.Update(msg)
		if !m.picker.Focused() && m.picker.Color() != before {
			m.status = "picked " + m.picker.Color()
			m.logger.Debug("color picked", "color", m.picker.Color())
		}
		return m, cmd
	}

	action, slot := m.keyMapper.MapKey(msg)
	if m.tooSmall() && action.TargetsCell() {
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dx, dy := action.Delta()
		m.moveCursor(dx, dy)

	case core.ActionClick:
		m.fire(m.cursorCell(), colortable.TriggerClick)

	case core.ActionDoubleClick:
		m.fire(m.cursorCell(), colortable.TriggerDoubleClick)

	case core.ActionPicker:
		return m, m.picker.Focus()

	case core.ActionPalette:
		if slot < len(m.cfg.Picker.Palette) {
			if err := m.picker.Set(m.cfg.Picker.Palette[slot]); err == nil {
				m.status = "picked " + m.picker.Color()
			}
		}
	}

	return m, nil
}

// handleMouse maps pointer events to cell triggers.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The grid is not drawn, so positions map to nothing.
	if m.tooSmall() {
		return m, nil
	}

	cell, row, col := m.cellAt(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.enter(cell, row, col)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.enter(cell, row, col)
		m.press(cell)
	}

	return m, nil
}

// tooSmall reports whether the window cannot show the whole grid.
// An unknown size (zero) is assumed to fit.
func (m Model) tooSmall() bool {
	if m.runtime.ScreenW <= 0 || m.runtime.ScreenH <= 0 {
		return false
	}
	wc := m.widget.Config()
	return m.runtime.ScreenW < wc.Cols*m.cfg.Cell.Width ||
		m.runtime.ScreenH < gridTop+wc.Rows*m.cfg.Cell.Height
}

// cellAt returns the cell drawn at screen position (x, y) with its grid position.
func (m Model) cellAt(x, y int) (*colortable.Cell, int, int) {
	w, h := m.cfg.Cell.Width, m.cfg.Cell.Height
	wc := m.widget.Config()
	area := core.NewRect(0, gridTop, wc.Cols*w, wc.Rows*h)
	if !area.Contains(x, y) {
		return nil, -1, -1
	}
	row := (y - gridTop) / h
	col := x / w
	return m.table.At(row, col), row, col
}

func (m *Model) cursorCell() *colortable.Cell {
	return m.table.At(m.cursorRow, m.cursorCol)
}

func (m *Model) moveCursor(dx, dy int) {
	wc := m.widget.Config()
	row := core.Clamp(m.cursorRow+dy, 0, wc.Rows-1)
	col := core.Clamp(m.cursorCol+dx, 0, wc.Cols-1)
	m.enter(m.table.At(row, col), row, col)
}

// enter records the pointer moving onto cell and fires hover once per entry.
func (m *Model) enter(cell *colortable.Cell, row, col int) {
	if cell == nil {
		m.hovered = 0
		return
	}
	m.cursorRow, m.cursorCol = row, col
	if cell.ID == m.hovered {
		return
	}
	m.hovered = cell.ID
	m.fire(cell, colortable.TriggerHover)
}

// press fires click, and double-click when the previous press hit the same
// cell within the double-click interval.
func (m *Model) press(cell *colortable.Cell) {
	if cell == nil {
		m.lastClickID = 0
		return
	}

	m.fire(cell, colortable.TriggerClick)

	now := m.now()
	if m.lastClickID == cell.ID && now.Sub(m.lastClickAt) <= m.runtime.DoubleClickInterval {
		m.fire(cell, colortable.TriggerDoubleClick)
		m.lastClickID = 0
		return
	}
	m.lastClickID = cell.ID
	m.lastClickAt = now
}

func (m *Model) fire(cell *colortable.Cell, t colortable.Trigger) {
	if cell == nil || !cell.Fire(t) {
		return
	}
	color := cell.Background
	if t == colortable.TriggerDoubleClick {
		color = m.picker.Color()
	}
	m.status = fmt.Sprintf("%s on cell %d: %s", t, cell.ID, color)
	m.logger.Debug("cell triggered", "trigger", t.String(), "cell", cell.ID, "color", color)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	wc := m.widget.Config()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Color table"))
	sb.WriteString(m.styles.Help.Render(fmt.Sprintf("  %dx%d, target cell %d", wc.Rows, wc.Cols, wc.Variant)))
	sb.WriteString("\n\n")

	if m.tooSmall() {
		sb.WriteString(m.styles.Error.Render("Window too small"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render(fmt.Sprintf("Resize to at least %dx%d to continue  q: quit",
			wc.Cols*m.cfg.Cell.Width, gridTop+wc.Rows*m.cfg.Cell.Height)))
		return sb.String()
	}

	sb.WriteString(m.styles.grid(m.table, m.cfg.Cell.Width, m.cfg.Cell.Height, m.cursorRow, m.cursorCol))
	sb.WriteString("\n\n")
	sb.WriteString(m.picker.View(m.styles))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(m.status))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render(m.help()))
	return sb.String()
}

func (m Model) help() string {
	if m.picker.Focused() {
		return "enter: apply  esc: cancel"
	}
	return "mouse or arrows/hjkl: hover  enter: click  d: double-click  tab: pick color  1-9: palette  q: quit"
}

// Widget returns the color table widget.
func (m Model) Widget() *colortable.Widget {
	return m.widget
}

// Picker returns the color picker.
func (m Model) Picker() *Picker {
	return m.picker
}

// Status returns the last status line.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program for the color table.
func Run(cfg config.ColorTableConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, WithLogger(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err = p.Run()
	return err
}
