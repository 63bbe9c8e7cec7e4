package core

import "time"

// RuntimeConfig carries terminal-dependent settings into the front end.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters

	// DoubleClickInterval is the longest gap between two presses on the same
	// cell that still counts as a double-click.
	DoubleClickInterval time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:             80,
		ScreenH:             24,
		DoubleClickInterval: 400 * time.Millisecond,
	}
}
