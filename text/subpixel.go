package text

import "math"

// SubpixelMode controls horizontal subpixel glyph positioning.
// Glyphs are rasterized at fractional pen positions so that advances and
// kerning are not rounded away at small sizes.
type SubpixelMode int

const (
	// SubpixelNone disables subpixel positioning.
	// Glyphs snap to whole pixels.
	SubpixelNone SubpixelMode = 0

	// Subpixel4 uses 4 subpixel positions (0.0, 0.25, 0.5, 0.75).
	// Good balance of quality and cache size.
	Subpixel4 SubpixelMode = 4
)

// String returns the string representation of the subpixel mode.
func (m SubpixelMode) String() string {
	switch m {
	case SubpixelNone:
		return "None"
	case Subpixel4:
		return "Subpixel4"
	default:
		return unknownStr
	}
}

// Divisions returns the number of subpixel divisions.
// Returns 1 for SubpixelNone (no divisions).
func (m SubpixelMode) Divisions() int {
	if m <= 0 {
		return 1
	}
	return int(m)
}

// Quantize converts a fractional position to quantized subpixel offset.
// Returns the integer position and subpixel key component.
//
// For example, with Subpixel4 mode:
//   - pos=10.0 returns (10, 0)
//   - pos=10.25 returns (10, 1)
//   - pos=10.5 returns (10, 2)
//   - pos=10.99 returns (10, 3)
//   - pos=-0.5 returns (-1, 2)
func Quantize(pos float64, mode SubpixelMode) (intPos int, subPos uint8) {
	if mode <= 0 {
		return int(math.Floor(pos + 0.5)), 0
	}

	intPart := math.Floor(pos)
	frac := pos - intPart

	divisions := mode.Divisions()
	sub := int(frac * float64(divisions))
	sub = max(0, min(sub, divisions-1))

	return int(intPart), uint8(sub) //nolint:gosec // sub is bounded [0, divisions-1]
}

// SubpixelOffset returns the rendering offset for a subpixel position.
// For Subpixel4 mode: 0 -> 0.0, 1 -> 0.25, 2 -> 0.5, 3 -> 0.75
func SubpixelOffset(subPos uint8, mode SubpixelMode) float64 {
	if mode <= 0 {
		return 0
	}
	return float64(subPos) / float64(mode.Divisions())
}
