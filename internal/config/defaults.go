package config

import (
	_ "embed"
)

//go:embed defaults/colortable.yaml
var defaultColorTableYAML []byte

// DefaultColorTableConfig returns the default color table configuration.
func DefaultColorTableConfig() ColorTableConfig {
	return ColorTableConfig{
		Grid: GridConfig{
			Rows:    6,
			Cols:    6,
			Variant: 5,
		},
		Cell: CellConfig{
			Width:  6,
			Height: 3,
		},
		Input: InputConfig{
			DoubleClickMS: 400,
		},
		Picker: PickerConfig{
			InitialColor: "#000000",
			Palette: []string{
				"#e63946",
				"#f1a208",
				"#2a9d8f",
				"#457b9d",
				"#6a4c93",
				"rgb(255,255,255)",
				"rgb(128,128,128)",
				"rgb(0,0,0)",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultColorTableYAML
}
