package text

import (
	"image"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PositionedGlyph is a shaped glyph placed on a line.
type PositionedGlyph struct {
	// GID is the glyph index within the font.
	GID GlyphID

	// Cluster is the index of the source rune that produced the glyph.
	Cluster int

	// SubX is the quantized horizontal subpixel position the glyph is
	// rasterized at.
	SubX uint8

	// Bounds is the pixel bounding box of the glyph relative to the line
	// origin (baseline at y = ascent). Empty for glyphs that draw nothing.
	Bounds image.Rectangle

	// Mask is the coverage of the glyph, nil until Line.Rasterize.
	// Mask.Rect translated by Bounds.Min − Mask.Rect.Min gives Bounds.
	Mask *GlyphMask
}

// Inked reports whether the glyph draws at least one pixel.
func (g PositionedGlyph) Inked() bool {
	return !g.Bounds.Empty()
}

// Line is a single run of text laid out on one baseline.
// Lines are not wrapped.
type Line struct {
	// Glyphs are the glyphs in visual order.
	Glyphs []PositionedGlyph

	// Ascent is the distance from the top of the line box to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line
	// box (positive).
	Descent float64

	face Face

	first, last int

	// vertical ink extent, at least [0, ceil(ascent + descent))
	top, bottom int
}

// Height returns the line box height. It is ceil(ascent + descent) unless
// ink reaches above the ascent or below the descent, in which case the box
// grows to enclose it.
func (l *Line) Height() int {
	return l.bottom - l.top
}

// MinX returns the left edge of the first inked glyph.
func (l *Line) MinX() int {
	return l.Glyphs[l.first].Bounds.Min.X
}

// MinY returns the top of the line box. It is 0, or negative when ink
// rises above the ascent.
func (l *Line) MinY() int {
	return l.top
}

// Width returns the distance from the left edge of the first inked glyph
// to the right edge of the last inked glyph.
func (l *Line) Width() int {
	return l.Glyphs[l.last].Bounds.Max.X - l.MinX()
}

// Rasterize fills in the coverage masks of the inked glyphs from the font
// source's mask cache. Glyphs that already carry a mask are skipped.
func (l *Line) Rasterize() error {
	source := l.face.Source()
	if source == nil {
		return ErrClosed
	}
	for i := range l.Glyphs {
		g := &l.Glyphs[i]
		if g.Mask != nil || !g.Inked() {
			continue
		}
		mask, err := source.Mask(g.GID, l.face.Size(), g.SubX)
		if err != nil {
			return err
		}
		g.Mask = mask
	}
	return nil
}

// LayoutLine shapes s with face and returns its glyphs on a single line.
//
// The text is normalized to NFC before shaping. Pen positions are
// quantized to quarter pixels horizontally and the baseline is snapped down
// to a whole pixel. Glyph bounds come from the outlines; nothing is
// rasterized until Rasterize is called, so measuring a line that will not
// be drawn costs no coverage memory.
//
// Returns ErrEmptyText if s has no non-space characters and ErrNoGlyphs if
// none of the shaped glyphs draws anything.
func LayoutLine(face Face, shaper Shaper, s string) (*Line, error) {
	if face == nil || face.Source() == nil {
		return nil, ErrClosed
	}
	s = norm.NFC.String(s)
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyText
	}
	if shaper == nil {
		shaper = GetShaper()
	}

	source := face.Source()
	if source.Parsed() == nil {
		return nil, ErrClosed
	}

	metrics := face.Metrics()
	shaped := shaper.Shape(s, face)

	line := &Line{
		Glyphs:  make([]PositionedGlyph, 0, len(shaped)),
		Ascent:  metrics.Ascent,
		Descent: metrics.Descent,
		face:    face,
		first:   -1,
		last:    -1,
		bottom:  metrics.BlockHeight(),
	}

	for _, g := range shaped {
		x, subX := Quantize(g.X, Subpixel4)
		y := int(math.Floor(metrics.Ascent + g.Y))

		rect, err := source.GlyphRect(g.GID, face.Size(), subX)
		if err != nil {
			return nil, err
		}

		pg := PositionedGlyph{
			GID:     g.GID,
			Cluster: g.Cluster,
			SubX:    subX,
		}
		if !rect.Empty() {
			pg.Bounds = rect.Add(image.Pt(x, y))
			if line.first < 0 {
				line.first = len(line.Glyphs)
			}
			line.last = len(line.Glyphs)
			line.top = min(line.top, pg.Bounds.Min.Y)
			line.bottom = max(line.bottom, pg.Bounds.Max.Y)
		}
		line.Glyphs = append(line.Glyphs, pg)
	}

	if line.first < 0 {
		return nil, ErrNoGlyphs
	}
	return line, nil
}
