package text

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require complex text shaping (ligatures, contextual forms, etc.).
//
// Glyphs are positioned left to right by their advances, adjusted by the
// font's kern table when present. For complex scripts use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}

	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	var prev uint16

	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)

		if cluster > 0 {
			x += parsed.Kern(prev, gid, size)
		}

		advance := parsed.GlyphAdvance(gid, size)
		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})

		x += advance
		prev = gid
	}

	return result
}
