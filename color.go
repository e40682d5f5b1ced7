package relief

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color name such as "steelblue", "transparent", or a hexadecimal color of the form #rgb or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("%w: empty color", ErrInvalidInput)
	} else if s == "transparent" || s == "none" {
		return color.RGBA{}, nil
	} else if strings.HasPrefix(s, "#") {
		if n := len(s) - 1; n != 3 && n != 6 {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, s)
		} else if strings.Trim(s[1:], "0123456789abcdef") != "" {
			return nil, fmt.Errorf("%w: bad hex color %q", ErrInvalidInput, s)
		}
		c := drawing.ColorFromHex(s[1:])
		return color.RGBA{c.R, c.G, c.B, c.A}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidInput, s)
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
