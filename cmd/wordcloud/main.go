// Command wordcloud renders a word cloud image.
//
// Words come from a JSON job file in the format of wordcloud.Request, or
// from a built-in demo list when -words is not given:
//
//	wordcloud -words job.json -output cloud.png -seed 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/wordcloud"
	"github.com/gogpu/wordcloud/text"
)

// demoWords is drawn when no job file is given.
var demoWords = []wordcloud.Word{
	{Text: "ArchLinux", Size: 80},
	{Text: "liyiheng", Size: 42},
	{Text: "Git", Size: 40},
	{Text: "Rust", Size: 70},
	{Text: "Go", Size: 64, Color: "#00add8"},
	{Text: "wordcloud", Size: 36, Color: "#b43200"},
	{Text: "pixel", Size: 28},
	{Text: "glyph", Size: 24},
	{Text: "canvas", Size: 22},
	{Text: "font", Size: 18},
}

func main() {
	var (
		width    = flag.Int("width", 640, "image width")
		height   = flag.Int("height", 480, "image height")
		output   = flag.String("output", "wordcloud.png", "output file (.png, .jpg, .gif, .bmp, .tiff)")
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Regular)")
		words    = flag.String("words", "", "JSON job file (default: demo words)")
		seed     = flag.Uint64("seed", 0, "random seed (0: nondeterministic)")
		quality  = flag.Int("quality", wordcloud.QualityNormal, "sampling stride of the blank-region search")
		shaping  = flag.Bool("harfbuzz", false, "shape text with HarfBuzz (ligatures, complex scripts)")
		bg       = flag.String("background", "", "background color, e.g. #ffffff (default: transparent)")
		debug    = flag.Bool("debug", false, "log placement details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	wordcloud.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(config{
		width:      *width,
		height:     *height,
		output:     *output,
		fontPath:   *fontPath,
		wordsPath:  *words,
		seed:       *seed,
		quality:    *quality,
		harfbuzz:   *shaping,
		background: *bg,
	}); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	width, height int
	output        string
	fontPath      string
	wordsPath     string
	seed          uint64
	quality       int
	harfbuzz      bool
	background    string
}

func run(cfg config) error {
	source, err := loadFont(cfg.fontPath)
	if err != nil {
		return err
	}
	defer func() { _ = source.Close() }()

	req := wordcloud.Request{Content: demoWords, Width: cfg.width, Height: cfg.height}
	if cfg.wordsPath != "" {
		if req, err = loadRequest(cfg.wordsPath, cfg.width, cfg.height); err != nil {
			return err
		}
	}

	opts := []wordcloud.Option{wordcloud.WithQuality(cfg.quality)}
	if cfg.seed != 0 {
		opts = append(opts, wordcloud.WithRand(rand.New(rand.NewPCG(cfg.seed, cfg.seed))))
	}
	if cfg.harfbuzz {
		opts = append(opts, wordcloud.WithShaper(text.NewGoTextShaper()))
	}
	if cfg.background != "" {
		col, err := wordcloud.ParseHex(cfg.background)
		if err != nil {
			return err
		}
		opts = append(opts, wordcloud.WithBackground(col))
	}

	canvas, sum, err := wordcloud.Render(source, req, opts...)
	if err != nil {
		return err
	}
	for _, f := range sum.Failures {
		log.Printf("skipped: %v", &f)
	}

	if err := canvas.Save(cfg.output); err != nil {
		return err
	}
	log.Printf("Word cloud saved to %s (%dx%d), %d of %d words placed\n",
		cfg.output, canvas.Width(), canvas.Height(), sum.Placed, len(req.Content))
	return nil
}

func loadFont(path string) (*text.FontSource, error) {
	if path == "" {
		return text.NewFontSource(goregular.TTF)
	}
	return text.NewFontSourceFromFile(path)
}

// loadRequest reads a job file. Width and height from the command line
// are used when the file leaves them unset.
func loadRequest(path string, width, height int) (wordcloud.Request, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return wordcloud.Request{}, err
	}

	var req wordcloud.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return wordcloud.Request{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if req.Width == 0 {
		req.Width = width
	}
	if req.Height == 0 {
		req.Height = height
	}
	return req, nil
}
