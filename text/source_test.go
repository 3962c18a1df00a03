package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go Regular font and closes it when the
// test ends.
func loadTestFont(t *testing.T, opts ...SourceOption) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF, opts...)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source
}

func TestNewFontSource(t *testing.T) {
	source := loadTestFont(t)

	if source.Name() == "" {
		t.Error("expected non-empty font name")
	}
	if source.Parsed() == nil {
		t.Fatal("Parsed() = nil before Close")
	}
	if got := source.Parsed().NumGlyphs(); got == 0 {
		t.Error("NumGlyphs() = 0")
	}
	if source.Masks() == nil {
		t.Error("Masks() = nil")
	}
}

func TestNewFontSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"garbage", []byte("definitely not a font")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := NewFontSource(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if source != nil {
				t.Error("expected nil source on error")
			}
		})
	}

	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSource_CopiesData(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)

	source, err := NewFontSource(data)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	defer func() { _ = source.Close() }()

	for i := range data {
		data[i] = 0
	}
	if source.Data()[0] == 0 && source.Data()[1] == 0 && source.Data()[2] == 0 && source.Data()[3] == 0 {
		t.Error("source data was not copied")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatalf("failed to write font: %v", err)
	}

	source, err := NewFontSourceFromFile(path)
	if err != nil {
		t.Fatalf("NewFontSourceFromFile failed: %v", err)
	}
	defer func() { _ = source.Close() }()

	if source.Name() == "" {
		t.Error("expected non-empty font name")
	}
}

func TestNewFontSourceFromFile_Missing(t *testing.T) {
	_, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestNewFontSource_UnknownParserFallsBack(t *testing.T) {
	source, err := NewFontSource(goregular.TTF, WithParser("nope"))
	if err != nil {
		t.Fatalf("unknown parser should fall back to the default: %v", err)
	}
	defer func() { _ = source.Close() }()

	if source.Parsed() == nil {
		t.Error("expected parsed font from the default parser")
	}
}

// failingParser rejects every font.
type failingParser struct{}

var errRejected = errors.New("rejected")

func (failingParser) Parse([]byte) (ParsedFont, error) { return nil, errRejected }

func TestNewFontSource_CustomParser(t *testing.T) {
	RegisterParser("failing", failingParser{})

	_, err := NewFontSource(goregular.TTF, WithParser("failing"))
	if !errors.Is(err, errRejected) {
		t.Errorf("error = %v, want errRejected", err)
	}
}

func TestFontSource_Close(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}

	face := source.Face(16)
	if _, err := source.Mask(GlyphID(source.Parsed().GlyphIndex('A')), 16, 0); err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	if source.Masks().Len() == 0 {
		t.Fatal("expected a cached mask")
	}

	if err := source.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if source.Parsed() != nil {
		t.Error("Parsed() should be nil after Close")
	}
	if source.Data() != nil {
		t.Error("Data() should be nil after Close")
	}
	if source.Masks().Len() != 0 {
		t.Error("mask cache should be empty after Close")
	}
	if m := face.Metrics(); m != (Metrics{}) {
		t.Errorf("Metrics() after Close = %+v, want zero", m)
	}
	if _, err := source.Mask(1, 16, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Mask after Close error = %v, want ErrClosed", err)
	}
}

func TestFontSource_NilFacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil FontSource")
		}
	}()

	var source *FontSource
	source.Face(12)
}

func TestFontSource_CopyPanics(t *testing.T) {
	source := loadTestFont(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for copied FontSource")
		}
	}()

	//nolint:govet // copying on purpose
	copied := *source
	copied.Name()
}

func TestFontSource_WithCacheLimit(t *testing.T) {
	source := loadTestFont(t, WithCacheLimit(numShards))

	parsed := source.Parsed()
	for r := 'a'; r <= 'z'; r++ {
		if _, err := source.Mask(GlyphID(parsed.GlyphIndex(r)), 20, 0); err != nil {
			t.Fatalf("Mask(%q) failed: %v", r, err)
		}
	}

	if got := source.Masks().Len(); got > numShards {
		t.Errorf("cache holds %d masks, limit is %d", got, numShards)
	}
}

func TestFontSource_MaskCached(t *testing.T) {
	source := loadTestFont(t)
	gid := GlyphID(source.Parsed().GlyphIndex('W'))

	m1, err := source.Mask(gid, 32, 1)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	m2, err := source.Mask(gid, 32, 1)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	if m1 != m2 {
		t.Error("second Mask call should return the cached mask")
	}

	m3, err := source.Mask(gid, 32, 2)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	if m3 == m1 {
		t.Error("different subpixel positions must not share a mask")
	}

	stats := source.Masks().Stats()
	if stats.Hits != 1 || stats.Misses != 2 {
		t.Errorf("stats = %+v, want 1 hit and 2 misses", stats)
	}
}

func TestFontSource_MaskExactSize(t *testing.T) {
	source := loadTestFont(t)
	gid := GlyphID(source.Parsed().GlyphIndex('W'))

	m1, err := source.Mask(gid, 32, 0)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	// Within 1/64 px of 32: same 26.6 value, different size.
	m2, err := source.Mask(gid, 32.005, 0)
	if err != nil {
		t.Fatalf("Mask failed: %v", err)
	}
	if m1 == m2 {
		t.Error("nearby sizes must not share a cached mask")
	}
	if n := source.Masks().Len(); n != 2 {
		t.Errorf("cache holds %d masks, want 2", n)
	}
}

func TestFontSource_GlyphRect(t *testing.T) {
	source := loadTestFont(t)
	parsed := source.Parsed()

	for _, r := range "Wgj.' " {
		gid := GlyphID(parsed.GlyphIndex(r))
		for subX := range uint8(4) {
			rect, err := source.GlyphRect(gid, 37, subX)
			if err != nil {
				t.Fatalf("GlyphRect(%q) failed: %v", r, err)
			}
			if n := source.Masks().Len(); n != 0 {
				t.Fatalf("GlyphRect cached %d masks, want 0", n)
			}

			mask, err := source.Mask(gid, 37, subX)
			if err != nil {
				t.Fatalf("Mask(%q) failed: %v", r, err)
			}
			if rect != mask.Rect {
				t.Errorf("GlyphRect(%q, subX %d) = %v, mask Rect = %v", r, subX, rect, mask.Rect)
			}

			cached, err := source.GlyphRect(gid, 37, subX)
			if err != nil || cached != mask.Rect {
				t.Errorf("GlyphRect from cache = %v, %v; want %v", cached, err, mask.Rect)
			}
			source.Masks().Clear()
		}
	}

	_ = source.Close()
	if _, err := source.GlyphRect(1, 12, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("GlyphRect after Close error = %v, want ErrClosed", err)
	}
}
