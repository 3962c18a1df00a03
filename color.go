package wordcloud

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 8-bit text color.
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the color used by DrawText until changed.
var DefaultColor = RGB{R: 160, G: 0, B: 0}

// NRGBA returns c with the given alpha as a non-premultiplied color.
func (c RGB) NRGBA(a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses a color in "#rrggbb", "rrggbb", "#rgb" or "rgb" form.
// Digits are hexadecimal and case-insensitive.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil //nolint:gosec // masked by the conversion
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}
