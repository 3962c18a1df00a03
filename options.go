package wordcloud

import "github.com/gogpu/wordcloud/text"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Deterministic placement with HarfBuzz shaping
//	canvas, err := wordcloud.New(source, 640, 480,
//	    wordcloud.WithRand(rand.New(rand.NewPCG(1, 2))),
//	    wordcloud.WithShaper(text.NewGoTextShaper()))
type Option func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	rand       Rand
	shaper     text.Shaper
	search     SearchConfig
	color      RGB
	background *RGB
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		rand:   globalRand{},
		shaper: nil, // text.GetShaper() at draw time
		search: DefaultSearchConfig(),
		color:  DefaultColor,
	}
}

// WithRand sets the source of randomness for placement.
// A nil Rand keeps the default process-wide generator.
func WithRand(r Rand) Option {
	return func(o *canvasOptions) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithShaper sets the shaper used to lay out text.
// By default the global text shaper (text.GetShaper) is used.
func WithShaper(s text.Shaper) Option {
	return func(o *canvasOptions) {
		o.shaper = s
	}
}

// WithSearchConfig sets the blank-region search parameters.
// Non-positive fields keep their defaults.
func WithSearchConfig(cfg SearchConfig) Option {
	return func(o *canvasOptions) {
		o.search = cfg
	}
}

// WithQuality sets the sampling stride used by DrawText.
// See QualityLow, QualityNormal and QualityHigh.
func WithQuality(q int) Option {
	return func(o *canvasOptions) {
		o.search.Quality = q
	}
}

// WithDefaultColor sets the color used by DrawText.
func WithDefaultColor(c RGB) Option {
	return func(o *canvasOptions) {
		o.color = c
	}
}

// WithBackground sets an opaque background that exported images are
// flattened onto. The canvas itself stays transparent, so the background
// does not count as occupied.
func WithBackground(c RGB) Option {
	return func(o *canvasOptions) {
		o.background = &c
	}
}
