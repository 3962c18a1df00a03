// Package text provides the font side of wordcloud: parsing, shaping and
// glyph coverage masks.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//   - Shaper: converts a string into positioned glyphs
//   - GlyphMask: per-pixel coverage of one rasterized glyph
//   - Line: a shaped single-baseline run with masks and pixel bounds
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	line, err := text.LayoutLine(source.Face(40), text.GetShaper(), "Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(line.Width(), line.Height())
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface. By default
// golang.org/x/image/font/opentype is used. Custom parsers can be
// registered with RegisterParser and selected with WithParser.
//
// # Concurrency
//
// A FontSource and the masks it caches are safe to share between
// goroutines and between canvases. Faces are immutable values.
package text
