package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyText is returned when the text to lay out is empty or
	// contains only whitespace.
	ErrEmptyText = errors.New("text: empty text")

	// ErrNoGlyphs is returned when a text shapes to no glyph with a
	// non-empty bounding box.
	ErrNoGlyphs = errors.New("text: text has no visible glyphs")

	// ErrClosed is returned when a FontSource is used after Close.
	ErrClosed = errors.New("text: font source is closed")
)

// ErrUnsupportedFontType is returned when the parsed font does not come from
// a backend that can produce outlines.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
