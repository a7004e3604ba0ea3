package svgtheme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with three 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// ParseColor parses a hex color string into an RGB value. It accepts the
// "#rgb" and "#rrggbb" forms, case-insensitive, with no surrounding
// whitespace. Anything else is an error.
func ParseColor(s string) (RGB, error) {
	// colorful.Hex scans with Sscanf, which ignores unconsumed trailing
	// input, so the exact shape must be checked first.
	if !isHexColor(s) {
		return RGB{}, fmt.Errorf("parse color %q: not a 3- or 6-digit hex color", s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// isHexColor reports whether s is "#" followed by exactly 3 or 6 hex digits.
func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex returns the canonical lowercase "#rrggbb" form of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
