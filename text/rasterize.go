package text

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// GlyphMask is the coverage of one rasterized glyph.
//
// Rect is the pixel bounding box of the glyph relative to the integer pen
// position on the baseline (y grows downwards, so Rect.Min.Y is negative
// for glyphs that rise above the baseline). Alpha shares the same bounds
// and stores coverage as 0..255.
type GlyphMask struct {
	Rect  image.Rectangle
	Alpha *image.Alpha
}

// Empty reports whether the mask covers no pixel (e.g. a space).
func (m *GlyphMask) Empty() bool {
	return m == nil || m.Alpha == nil || m.Rect.Empty()
}

// Coverage returns the coverage at (x, y) in [0, 1].
// Coordinates are in mask space, i.e. within Rect.
func (m *GlyphMask) Coverage(x, y int) float32 {
	if m.Empty() {
		return 0
	}
	return float32(m.Alpha.AlphaAt(x, y).A) / 255
}

// OutlineRect returns the pixel rectangle RasterizeOutline produces for
// outline at offsetX, without rasterizing. Empty outlines give an empty
// rectangle.
func OutlineRect(outline *GlyphOutline, offsetX float64) image.Rectangle {
	if outline == nil || outline.IsEmpty() {
		return image.Rectangle{}
	}
	b := outline.Bounds
	r := image.Rect(
		int(math.Floor(b.MinX+offsetX)),
		int(math.Floor(b.MinY)),
		ceilInt(b.MaxX+offsetX),
		ceilInt(b.MaxY),
	)
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

// RasterizeOutline renders a glyph outline into a coverage mask.
// offsetX shifts the outline right by a fraction of a pixel before
// rasterizing; see SubpixelOffset.
//
// Uses golang.org/x/image/vector, the same scanline rasterizer that backs
// golang.org/x/image/font/opentype faces.
func RasterizeOutline(outline *GlyphOutline, offsetX float64) *GlyphMask {
	rect := OutlineRect(outline, offsetX)
	if rect.Empty() {
		return &GlyphMask{}
	}
	minX, minY := rect.Min.X, rect.Min.Y
	width, height := rect.Dx(), rect.Dy()

	// vector.Rasterizer expects coordinates in the positive quadrant.
	dx := float32(offsetX - float64(minX))
	dy := float32(-minY)

	r := vector.NewRasterizer(width, height)
	r.DrawOp = draw.Src
	for _, seg := range outline.Segments {
		p := seg.Points
		switch seg.Op {
		case OutlineOpMoveTo:
			r.MoveTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpLineTo:
			r.LineTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpQuadTo:
			r.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case OutlineOpCubicTo:
			r.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its position relative to the pen
	alpha.Rect = alpha.Rect.Add(image.Pt(minX, minY))
	return &GlyphMask{Rect: alpha.Rect, Alpha: alpha}
}

// ceilInt rounds up to an int, tolerating float noise just above an integer.
func ceilInt(v float64) int {
	const epsilon = 1e-9
	return int(math.Ceil(v - epsilon))
}
