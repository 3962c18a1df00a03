package text

// ShapedGlyph represents a glyph positioned by a Shaper.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// X is the horizontal pen position relative to the text origin.
	X float64

	// Y is the vertical offset relative to the baseline (y down).
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16
