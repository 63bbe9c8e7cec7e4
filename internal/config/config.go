// Package config provides YAML-based configuration loading for the color table.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-labs/internal/colortable"
	"github.com/vovakirdan/tui-labs/internal/core"
)

// ColorTableConfig contains all configuration for the color table program.
type ColorTableConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Cell   CellConfig   `yaml:"cell"`
	Input  InputConfig  `yaml:"input"`
	Picker PickerConfig `yaml:"picker"`
}

// GridConfig defines the grid dimensions and the interactive cell.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Variant int `yaml:"variant"`
}

// CellConfig defines the on-screen size of one cell in characters.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InputConfig defines pointer timing.
type InputConfig struct {
	DoubleClickMS int `yaml:"double_click_ms"`
}

// PickerConfig defines the color picker's starting value and quick palette.
type PickerConfig struct {
	InitialColor string   `yaml:"initial_color"`
	Palette      []string `yaml:"palette"`
}

// Widget returns the widget configuration.
func (c ColorTableConfig) Widget() colortable.Config {
	return colortable.Config{
		Rows:    c.Grid.Rows,
		Cols:    c.Grid.Cols,
		Variant: c.Grid.Variant,
	}
}

// DoubleClickInterval returns the double-click window as a duration.
func (c ColorTableConfig) DoubleClickInterval() time.Duration {
	return time.Duration(c.Input.DoubleClickMS) * time.Millisecond
}

// Validate checks the configuration for values the program cannot run with.
func (c ColorTableConfig) Validate() error {
	if err := c.Widget().Validate(); err != nil {
		return err
	}
	if c.Cell.Width < 1 || c.Cell.Height < 1 {
		return fmt.Errorf("cell size %dx%d must be at least 1x1", c.Cell.Width, c.Cell.Height)
	}
	if c.Input.DoubleClickMS <= 0 {
		return fmt.Errorf("double_click_ms must be positive, got %d", c.Input.DoubleClickMS)
	}
	if _, err := core.ParseColor(c.Picker.InitialColor); err != nil {
		return fmt.Errorf("picker initial_color: %w", err)
	}
	for i, p := range c.Picker.Palette {
		if _, err := core.ParseColor(p); err != nil {
			return fmt.Errorf("picker palette[%d]: %w", i, err)
		}
	}
	return nil
}
