// Package colortable implements the color grid widget: an R×C grid of numbered
// cells appended to a caller-supplied container, with one target cell that
// reacts to hover, click and double-click.
//
// The widget is single-threaded. Handlers run synchronously when a cell's
// trigger is fired and never block.
package colortable

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"strconv"
)

// MaxCells bounds the number of cells a grid may hold.
const MaxCells = 10000

var (
	// ErrConfiguration is returned when the grid dimensions or the target
	// cell id cannot produce a valid grid.
	ErrConfiguration = errors.New("colortable: configuration error")

	// ErrResourceUnavailable is returned when the container or the color
	// source does not satisfy its contract.
	ErrResourceUnavailable = errors.New("colortable: resource unavailable")
)

// ColorSource provides the currently selected color.
type ColorSource interface {
	Color() string
}

// IntN returns a uniformly distributed integer in [0, n).
type IntN func(n int) int

// Config sets the grid dimensions and the target cell.
type Config struct {
	Rows    int
	Cols    int
	Variant int // Id of the interactive cell
}

// DefaultConfig returns the 6×6 grid with cell 5 as the target.
func DefaultConfig() Config {
	return Config{
		Rows:    6,
		Cols:    6,
		Variant: 5,
	}
}

// Validate checks that the dimensions are positive, the grid holds at most
// MaxCells cells and the variant addresses one of them.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: grid %dx%d must have at least one row and column", ErrConfiguration, c.Rows, c.Cols)
	}
	if c.Rows > MaxCells/c.Cols {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrConfiguration, c.Rows, c.Cols, MaxCells)
	}
	if n := c.Rows * c.Cols; c.Variant < 1 || c.Variant > n {
		return fmt.Errorf("%w: variant %d outside [1, %d]", ErrConfiguration, c.Variant, n)
	}
	return nil
}

// Option customizes a Widget.
type Option func(*Widget)

// WithRand replaces the random source used for hover colors.
func WithRand(intn IntN) Option {
	return func(w *Widget) {
		if intn != nil {
			w.intn = intn
		}
	}
}

// Widget owns the generated cells and the behaviors wired onto the target.
type Widget struct {
	cfg    Config
	source ColorSource
	intn   IntN
	cells  []*Cell
	target *Cell
}

// New builds the grid, wires the target cell and appends the rows to
// container. Construction is all-or-nothing: on error nothing has been
// appended and no cell carries listeners.
func New(container Container, source ColorSource, cfg Config, opts ...Option) (*Widget, error) {
	if container == nil {
		return nil, fmt.Errorf("%w: nil container", ErrResourceUnavailable)
	}
	if isNil(source) {
		return nil, fmt.Errorf("%w: nil color source", ErrResourceUnavailable)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &Widget{
		cfg:    cfg,
		source: source,
		intn:   rand.IntN,
	}
	for _, opt := range opts {
		opt(w)
	}

	rows := GenerateCells(cfg.Rows, cfg.Cols)
	for _, row := range rows {
		w.cells = append(w.cells, row...)
	}

	w.target = w.Cell(cfg.Variant)
	if w.target == nil {
		return nil, fmt.Errorf("%w: no cell with id %d", ErrConfiguration, cfg.Variant)
	}

	if err := container.Append(rows...); err != nil {
		return nil, fmt.Errorf("%w: cannot append rows: %w", ErrResourceUnavailable, err)
	}

	w.target.On(TriggerDoubleClick, func(*Cell) { w.paintOthers() })
	w.target.On(TriggerClick, func(c *Cell) { c.Background = w.source.Color() })
	w.target.On(TriggerHover, func(c *Cell) { c.Background = w.RandomColor() })

	return w, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// GenerateCells produces rows×cols cells in row-major order, numbered from 1
// and labeled with their number.
func GenerateCells(rows, cols int) []Row {
	if rows < 1 || cols < 1 {
		return nil
	}

	result := make([]Row, 0, rows)
	counter := 1
	for i := 0; i < rows; i++ {
		row := make(Row, 0, cols)
		for j := 0; j < cols; j++ {
			row = append(row, &Cell{
				ID:   counter,
				Text: strconv.Itoa(counter),
			})
			counter++
		}
		result = append(result, row)
	}
	return result
}

// RandomColor returns rgb(r,g,b) with each channel drawn independently
// from [0, 255].
func (w *Widget) RandomColor() string {
	red := w.intn(256)
	green := w.intn(256)
	blue := w.intn(256)
	return fmt.Sprintf("rgb(%d,%d,%d)", red, green, blue)
}

// paintOthers sets every cell except the target to the source color.
func (w *Widget) paintOthers() {
	color := w.source.Color()
	for _, c := range w.cells {
		if c.ID != w.target.ID {
			c.Background = color
		}
	}
}

// Config returns the configuration the widget was built with.
func (w *Widget) Config() Config {
	return w.cfg
}

// Target returns the interactive cell.
func (w *Widget) Target() *Cell {
	return w.target
}

// Cells returns every cell in row-major order.
func (w *Widget) Cells() []*Cell {
	return w.cells
}

// Cell returns the cell with the given id, or nil.
func (w *Widget) Cell(id int) *Cell {
	for _, c := range w.cells {
		if c.ID == id {
			return c
		}
	}
	return nil
}
