package wordcloud

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled
// placement logging costs no formatting on the drawing path.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	silent = slog.New(nopHandler{})

	// logger is nil until SetLogger is called with a non-nil logger.
	logger atomic.Pointer[slog.Logger]
)

// SetLogger routes the placement log of every canvas to l. Canvases are
// silent until it is called; nil makes them silent again.
//
// Records carry the word being drawn as a "word" group with "text" and
// "size" attributes, so a handler can follow one word through the search:
//   - [slog.LevelDebug]: region found or not, candidate count, placed rect
//   - [slog.LevelInfo]: DrawWords summary (placed, skipped, total)
//   - [slog.LevelWarn]: a word found no blank region and was skipped
//
// SetLogger may be called while canvases draw on other goroutines.
//
// Example:
//
//	wordcloud.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

// Logger returns the logger canvases write to, never nil.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}

// wordAttr groups the attributes identifying a word in log records.
func wordAttr(s string, size float64) slog.Attr {
	return slog.Group("word", slog.String("text", s), slog.Float64("size", size))
}
