package colortable

import (
	"errors"
	"fmt"
)

// Trigger names an interaction a cell can listen for.
type Trigger int

const (
	TriggerHover       Trigger = iota // pointer enters the cell
	TriggerClick                      // primary click
	TriggerDoubleClick                // double-click
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerHover:
		return "hover"
	case TriggerClick:
		return "click"
	case TriggerDoubleClick:
		return "double-click"
	default:
		return "unknown"
	}
}

// Handler reacts to a trigger fired on a cell.
type Handler func(c *Cell)

// Cell is one labeled, colorable element of the grid.
type Cell struct {
	ID         int    // 1-based identity in row-major order
	Text       string // Display text, the decimal form of ID
	Background string // Color value; empty until first set

	handlers map[Trigger]Handler
}

// On registers h for trigger t, replacing any earlier handler.
func (c *Cell) On(t Trigger, h Handler) {
	if c.handlers == nil {
		c.handlers = make(map[Trigger]Handler)
	}
	c.handlers[t] = h
}

// Listens reports whether a handler is registered for t.
func (c *Cell) Listens(t Trigger) bool {
	_, ok := c.handlers[t]
	return ok
}

// Interactive reports whether the cell listens for any trigger.
func (c *Cell) Interactive() bool {
	return len(c.handlers) > 0
}

// Fire runs the handler for t, if any, and reports whether one ran.
func (c *Cell) Fire(t Trigger) bool {
	h, ok := c.handlers[t]
	if !ok {
		return false
	}
	h(c)
	return true
}

// Row is one horizontal line of cells.
type Row []*Cell

// Container receives the generated rows.
// Implementations must either append every row or none of them.
type Container interface {
	Append(rows ...Row) error
}

var errNilTable = errors.New("table: nil table")

// Table is the in-memory Container the terminal front end renders.
type Table struct {
	rows []Row
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Append adds rows to the bottom of the table.
// Rows are validated up front so a rejected call leaves the table untouched.
func (t *Table) Append(rows ...Row) error {
	if t == nil {
		return errNilTable
	}
	for i, row := range rows {
		if len(row) == 0 {
			return fmt.Errorf("table: row %d is empty", i)
		}
		for j, cell := range row {
			if cell == nil {
				return fmt.Errorf("table: row %d has nil cell at column %d", i, j)
			}
		}
	}
	t.rows = append(t.rows, rows...)
	return nil
}

// Rows returns the table rows in display order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Cells returns every cell in row-major order.
func (t *Table) Cells() []*Cell {
	var cells []*Cell
	for _, row := range t.rows {
		cells = append(cells, row...)
	}
	return cells
}

// At returns the cell at (row, col), or nil when out of range.
func (t *Table) At(row, col int) *Cell {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	if col < 0 || col >= len(t.rows[row]) {
		return nil
	}
	return t.rows[row][col]
}
