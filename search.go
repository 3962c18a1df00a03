package wordcloud

import "image"

// Sampling strides for FindBlank. Smaller strides inspect more pixels and
// miss fewer collisions with thin strokes.
const (
	QualityLow    = 20
	QualityNormal = 10
	QualityHigh   = 5
)

// NotFound is returned by FindBlank when no blank region exists.
var NotFound = image.Pt(-1, -1)

// SearchConfig controls the blank-region search.
type SearchConfig struct {
	// Offsets is the number of grid offsets tried, 0 through Offsets-1.
	// Default: 30
	Offsets int

	// Step is the spacing of the candidate grid at each offset.
	// Default: 30
	Step int

	// Quality is the sampling stride used by DrawText.
	// Default: QualityNormal
	Quality int
}

// DefaultSearchConfig returns the default search configuration.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Offsets: 30,
		Step:    30,
		Quality: QualityNormal,
	}
}

// normalize replaces non-positive fields with their defaults.
func (c SearchConfig) normalize() SearchConfig {
	d := DefaultSearchConfig()
	if c.Offsets <= 0 {
		c.Offsets = d.Offsets
	}
	if c.Step <= 0 {
		c.Step = d.Step
	}
	if c.Quality <= 0 {
		c.Quality = d.Quality
	}
	return c
}

// FindBlank returns the top-left corner of a w×h region with no occupied
// pixel, or NotFound and false.
//
// Candidates lie on a grid of spacing Step shifted by an offset; offsets are
// tried in increasing order starting at 0. A candidate is accepted when
// every pixel sampled every quality pixels inside its rectangle is blank.
// At the first offset with any accepted candidate, one of them is chosen
// uniformly at random. A quality below 1 is treated as 1.
//
// Sampling means thin strokes between sample points can be missed, so
// regions found at quality > 1 may overlap existing ink.
func (c *Canvas) FindBlank(w, h, quality int) (image.Point, bool) {
	if w <= 0 || h <= 0 {
		return NotFound, false
	}
	quality = max(quality, 1)

	maxX, maxY := c.pixmap.Width()-w, c.pixmap.Height()-h
	if maxX <= 0 || maxY <= 0 {
		return NotFound, false
	}

	var candidates []image.Point
	for start := range c.search.Offsets {
		candidates = candidates[:0]
		for i := start; i < maxX; i += c.search.Step {
			for j := start; j < maxY; j += c.search.Step {
				if c.pixmap.blank(i, j, w, h, quality) {
					candidates = append(candidates, image.Pt(i, j))
				}
			}
		}
		if len(candidates) > 0 {
			p := candidates[c.rand.IntN(len(candidates))]
			Logger().Debug("wordcloud: blank region found",
				"w", w, "h", h, "offset", start, "candidates", len(candidates), "x", p.X, "y", p.Y)
			return p, true
		}
	}

	Logger().Debug("wordcloud: no blank region", "w", w, "h", h, "quality", quality)
	return NotFound, false
}
