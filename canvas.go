package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/wordcloud/text"
)

// Canvas is a fixed-size RGBA pixel grid that words are placed on.
//
// Each DrawText call lays the text out on a single line, searches for a
// blank region large enough to hold it, and writes the glyph coverage into
// that region. Pixels are overwritten, never blended, and only ever go from
// blank to occupied.
//
// A Canvas is not safe for concurrent use. Several canvases may share one
// text.FontSource.
type Canvas struct {
	pixmap *Pixmap
	source *text.FontSource
	shaper text.Shaper
	rand   Rand
	search SearchConfig

	color      RGB
	background *RGB
}

// New creates a transparent width×height canvas that draws with source.
func New(source *text.FontSource, width, height int, opts ...Option) (*Canvas, error) {
	if source == nil {
		return nil, ErrNilFont
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrInvalidSize, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Canvas{
		pixmap:     NewPixmap(width, height),
		source:     source,
		shaper:     o.shaper,
		rand:       o.rand,
		search:     o.search.normalize(),
		color:      o.color,
		background: o.background,
	}, nil
}

// DrawText draws s at size pixels per em in the default color.
// See DrawTextWithColor.
func (c *Canvas) DrawText(s string, size float64) (image.Rectangle, error) {
	return c.DrawTextWithColor(s, size, c.color)
}

// DrawTextWithColor draws s at size pixels per em in col and returns the
// rectangle it was placed in.
//
// The rectangle is as wide as the inked extent of the line and as tall as
// the font's ascent plus descent, grown to enclose marks that reach above
// the ascent or below the descent. If no blank region of that size exists,
// the canvas is left unchanged and an error wrapping ErrNoSpace is
// returned. Empty or whitespace-only text returns ErrEmptyText, text
// without visible glyphs returns text.ErrNoGlyphs.
//
// Glyph coverage is written as the pixel alpha over col, replacing
// whatever was there. Pixels with no coverage are left untouched and
// nothing is written outside the returned rectangle. Glyphs are only
// rasterized once a region has been found.
func (c *Canvas) DrawTextWithColor(s string, size float64, col RGB) (image.Rectangle, error) {
	if !(size > 0) || math.IsInf(size, 1) {
		return image.Rectangle{}, fmt.Errorf("%w: font size %v", ErrInvalidSize, size)
	}

	line, err := text.LayoutLine(c.source.Face(size), c.shaper, s)
	if err != nil {
		return image.Rectangle{}, err
	}

	w, h := line.Width(), line.Height()
	pt, ok := c.FindBlank(w, h, c.search.Quality)
	if !ok {
		Logger().Warn("wordcloud: no space left", wordAttr(s, size), "w", w, "h", h)
		return image.Rectangle{}, fmt.Errorf("%w for %q", ErrNoSpace, s)
	}

	if err := line.Rasterize(); err != nil {
		return image.Rectangle{}, err
	}
	placed := image.Rect(pt.X, pt.Y, pt.X+w, pt.Y+h)
	c.paint(line, placed, col)

	Logger().Debug("wordcloud: placed text", wordAttr(s, size), "rect", placed)
	return placed, nil
}

// paint writes the line's coverage into rect. The first inked glyph's left
// edge lands on rect.Min.X and the top of the line box on rect.Min.Y.
func (c *Canvas) paint(line *text.Line, rect image.Rectangle, col RGB) {
	origin := image.Pt(rect.Min.X-line.MinX(), rect.Min.Y-line.MinY())
	clip := rect.Intersect(c.pixmap.Bounds())

	for _, g := range line.Glyphs {
		if !g.Inked() || g.Mask.Empty() {
			continue
		}
		mask := g.Mask
		// mask space to canvas space
		d := origin.Add(g.Bounds.Min).Sub(mask.Rect.Min)
		dst := mask.Rect.Add(d).Intersect(clip)

		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			for x := dst.Min.X; x < dst.Max.X; x++ {
				a := mask.Alpha.AlphaAt(x-d.X, y-d.Y).A
				if a == 0 {
					continue
				}
				c.pixmap.SetPixel(x, y, col.NRGBA(a))
			}
		}
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.Height()
}

// Pixmap returns the canvas pixel grid. Writing to it affects placement.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pixmap
}

// Source returns the font source the canvas draws with.
func (c *Canvas) Source() *text.FontSource {
	return c.source
}

// At returns the pixel at (x, y), transparent outside the canvas.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.pixmap.PixelAt(x, y)
}

// Occupied reports whether the pixel at (x, y) counts as drawn on.
func (c *Canvas) Occupied(x, y int) bool {
	return c.pixmap.Occupied(x, y)
}

// OccupiedCount returns the number of occupied pixels.
func (c *Canvas) OccupiedCount() int {
	return c.pixmap.OccupiedCount()
}

// DefaultColor returns the color used by DrawText.
func (c *Canvas) DefaultColor() RGB {
	return c.color
}

// SetDefaultColor changes the color used by subsequent DrawText calls.
func (c *Canvas) SetDefaultColor(col RGB) {
	c.color = col
}
