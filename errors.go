package wordcloud

import (
	"errors"
	"fmt"

	"github.com/gogpu/wordcloud/text"
)

// Sentinel errors for the wordcloud package.
var (
	// ErrNilFont is returned by New when no font source is given.
	ErrNilFont = errors.New("wordcloud: nil font source")

	// ErrInvalidSize is returned for non-positive canvas dimensions or
	// font sizes.
	ErrInvalidSize = errors.New("wordcloud: invalid size")

	// ErrEmptyText is returned when the text to draw is empty or contains
	// only whitespace. It is the same value as text.ErrEmptyText.
	ErrEmptyText = text.ErrEmptyText

	// ErrNoSpace is returned when no blank region can hold the text.
	// The canvas is left unchanged; callers usually move on to the next word.
	ErrNoSpace = errors.New("wordcloud: no space left")

	// ErrUnsupportedFormat is returned when an image format cannot be
	// determined or encoded.
	ErrUnsupportedFormat = errors.New("wordcloud: unsupported image format")

	// ErrInvalidColor is returned by ParseHex for malformed colors.
	ErrInvalidColor = errors.New("wordcloud: invalid color")
)

// WordError records why a word of a batch was not drawn.
type WordError struct {
	// Index is the position of the word in the batch.
	Index int

	// Text is the word's text.
	Text string

	// Err is the underlying error.
	Err error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("wordcloud: word %d (%q): %v", e.Index, e.Text, e.Err)
}

func (e *WordError) Unwrap() error {
	return e.Err
}
