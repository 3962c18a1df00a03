// Package wordcloud places words on an RGBA canvas so that each one lands
// in a region that was still blank.
//
// # Overview
//
// A Canvas is a fixed-size pixel grid bound to one font. Every DrawText
// call lays a string out on a single line, searches the grid for a blank
// rectangle of that size, and writes the glyph coverage into it. Drawing
// never blends: pixels are overwritten, and only go from blank to occupied.
// Sizes, colors and order are up to the caller; listing larger words first
// gives them the best chance to fit.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/wordcloud"
//	    "github.com/gogpu/wordcloud/text"
//	    "golang.org/x/image/font/gofont/goregular"
//	)
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	canvas, err := wordcloud.New(source, 640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	canvas.SetDefaultColor(wordcloud.RGB{R: 180, G: 50})
//	for _, w := range []string{"ArchLinux", "Git", "Rust"} {
//	    if _, err := canvas.DrawText(w, 60); err != nil {
//	        log.Print(err) // usually wordcloud.ErrNoSpace; keep going
//	    }
//	}
//	canvas.Save("cloud.png")
//
// # Placement
//
// Candidate positions lie on a 30-pixel grid, tried at offsets 0 through
// 29 in turn. Each candidate rectangle is sampled every Quality pixels and
// accepted if no sample is occupied; the first offset with any accepted
// candidate picks one at random. See FindBlank and SearchConfig. Use
// WithRand with a seeded math/rand/v2 generator for reproducible output.
//
// # Logging
//
// The package is silent by default. SetLogger installs a log/slog logger;
// placement details are logged at debug level and words that find no room
// at warn level.
package wordcloud
