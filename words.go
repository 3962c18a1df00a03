package wordcloud

import (
	"errors"
	"fmt"

	"github.com/gogpu/wordcloud/text"
)

// Word is one entry of a batch.
type Word struct {
	// Text is drawn on a single line.
	Text string `json:"text"`

	// Size is the font size in pixels per em.
	Size float64 `json:"size"`

	// Color is an optional "#rrggbb" color. Empty means the canvas
	// default color.
	Color string `json:"color,omitempty"`
}

// Request describes a whole cloud: canvas size, default color, and the
// words in drawing order. Larger words are usually listed first so they
// find room before the canvas fills up.
type Request struct {
	Content []Word `json:"content"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`

	// Color is an optional "#rrggbb" default color.
	Color string `json:"color,omitempty"`
}

// Summary reports the outcome of a batch.
type Summary struct {
	// Placed is the number of words drawn.
	Placed int

	// Skipped is the number of words that found no blank region.
	Skipped int

	// Failures lists every word that was not drawn, including skipped ones.
	Failures []WordError
}

// DrawWords draws words in order. A word that does not fit, or that fails
// for any other reason, is recorded in the summary and drawing continues
// with the next one.
func (c *Canvas) DrawWords(words []Word) Summary {
	var sum Summary
	for i, w := range words {
		err := c.drawWord(w)
		if err == nil {
			sum.Placed++
			continue
		}
		if errors.Is(err, ErrNoSpace) {
			sum.Skipped++
		}
		sum.Failures = append(sum.Failures, WordError{Index: i, Text: w.Text, Err: err})
	}

	Logger().Info("wordcloud: batch finished",
		"placed", sum.Placed, "skipped", sum.Skipped, "total", len(words))
	return sum
}

func (c *Canvas) drawWord(w Word) error {
	col := c.color
	if w.Color != "" {
		parsed, err := ParseHex(w.Color)
		if err != nil {
			return err
		}
		col = parsed
	}
	_, err := c.DrawTextWithColor(w.Text, w.Size, col)
	return err
}

// Render creates a canvas for req and draws its words.
// Options are applied before the request's color, which wins when set.
func Render(source *text.FontSource, req Request, opts ...Option) (*Canvas, Summary, error) {
	if req.Color != "" {
		col, err := ParseHex(req.Color)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("wordcloud: request color: %w", err)
		}
		opts = append(opts[:len(opts):len(opts)], WithDefaultColor(col))
	}

	canvas, err := New(source, req.Width, req.Height, opts...)
	if err != nil {
		return nil, Summary{}, err
	}
	return canvas, canvas.DrawWords(req.Content), nil
}
