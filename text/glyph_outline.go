package text

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint represents a point in a glyph outline, in pixels.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// GlyphOutline represents the vector outline of a glyph, scaled to pixels
// with the origin on the baseline and y growing downwards.
type GlyphOutline struct {
	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Bounds is the bounding box of the outline control points.
	Bounds Rect

	// Advance is the horizontal advance width of the glyph.
	Advance float32

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline draws nothing (e.g. a space).
func (o *GlyphOutline) IsEmpty() bool {
	for _, seg := range o.Segments {
		if seg.Op != OutlineOpMoveTo {
			return false
		}
	}
	return true
}

// OutlineExtractor extracts glyph outlines from fonts.
// OutlineExtractor holds no state and is safe for concurrent use.
type OutlineExtractor struct{}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline for a glyph at the given size.
// The size is in pixels (ppem - pixels per em).
// Glyphs without contours (e.g. space) yield an empty outline.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	xiFont, ok := font.(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}

	segments, err := xiFont.font.LoadGlyph(nil, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		// ErrColoredGlyph means it's a color glyph (COLR/sbix)
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, &FontError{Reason: fmt.Sprintf("glyph %d is a color glyph", gid)}
		}
		return nil, fmt.Errorf("text: failed to load glyph %d: %w", gid, err)
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
		Advance:  float32(xiFont.GlyphAdvance(uint16(gid), size)),
	}
	if len(segments) == 0 {
		return outline, nil
	}

	minX, minY := float64(1e10), float64(1e10)
	maxX, maxY := float64(-1e10), float64(-1e10)

	for _, seg := range segments {
		var outSeg OutlineSegment
		n := 1

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			outSeg.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			outSeg.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			outSeg.Op = OutlineOpQuadTo
			n = 2
		case sfnt.SegmentOpCubeTo:
			outSeg.Op = OutlineOpCubicTo
			n = 3
		}

		for i := 0; i < n; i++ {
			outSeg.Points[i] = fixedPointToOutline(seg.Args[i])
			updateBounds(outSeg.Points[i], &minX, &minY, &maxX, &maxY)
		}

		outline.Segments = append(outline.Segments, outSeg)
	}

	outline.Bounds = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	return outline, nil
}

// fixedPointToOutline converts a fixed.Point26_6 to OutlinePoint.
func fixedPointToOutline(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{
		X: float32(p.X) / 64.0,
		Y: float32(p.Y) / 64.0,
	}
}

// updateBounds updates the min/max bounds.
func updateBounds(p OutlinePoint, minX, minY, maxX, maxY *float64) {
	*minX = min(*minX, float64(p.X))
	*minY = min(*minY, float64(p.Y))
	*maxX = max(*maxX, float64(p.X))
	*maxY = max(*maxY, float64(p.Y))
}
