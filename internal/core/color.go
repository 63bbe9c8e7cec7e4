package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color value as used for cell backgrounds.
type RGB struct {
	R, G, B uint8
}

// String returns the color in rgb(r,g,b) notation, without spaces.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex returns the color as #rrggbb, suitable for lipgloss.Color.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// IsLight reports whether dark text reads better than light text on this color.
func (c RGB) IsLight() bool {
	l, _, _ := c.colorful().Lab()
	return l > 0.6
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseColor parses a color in rgb(r,g,b) or #rrggbb notation.
// Whitespace inside rgb() is allowed; channels must be integers in [0, 255].
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "#"):
		c, err := colorful.Hex(lower)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, nil

	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		inner := lower[len("rgb(") : len(lower)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("invalid rgb color %q: expected 3 channels", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return RGB{}, fmt.Errorf("invalid rgb color %q: %w", s, err)
			}
			if v < 0 || v > 255 {
				return RGB{}, fmt.Errorf("invalid rgb color %q: channel %d out of range", s, v)
			}
			ch[i] = uint8(v)
		}
		return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
	}

	return RGB{}, fmt.Errorf("unrecognized color %q", s)
}
