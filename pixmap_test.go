package wordcloud

import (
	"image"
	"image/color"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(7, 3)
	if pm.Width() != 7 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 7x3", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 7*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 7*3*4)
	}
	if pm.OccupiedCount() != 0 {
		t.Error("new pixmap should be blank")
	}
	if pm.Bounds() != image.Rect(0, 0, 7, 3) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
}

func TestPixmap_SetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	c := color.NRGBA{R: 160, G: 1, B: 2, A: 128}

	pm.SetPixel(5, 5, c)
	if got := pm.PixelAt(5, 5); got != c {
		t.Errorf("PixelAt(5, 5) = %v, want %v", got, c)
	}

	i := (5*10 + 5) * 4
	if d := pm.Data()[i : i+4]; d[0] != 160 || d[1] != 1 || d[2] != 2 || d[3] != 128 {
		t.Errorf("raw data = %v, want non-premultiplied [160 1 2 128]", d)
	}

	r, g, b, a := pm.At(5, 5).RGBA()
	wr, wg, wb, wa := c.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Error("At() should return the stored NRGBA color")
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100}} {
		pm.SetPixel(p.X, p.Y, color.NRGBA{R: 255, A: 255})
		if got := pm.PixelAt(p.X, p.Y); got != (color.NRGBA{}) {
			t.Errorf("PixelAt(%v) = %v, want transparent", p, got)
		}
		if pm.Occupied(p.X, p.Y) {
			t.Errorf("Occupied(%v) = true outside the pixmap", p)
		}
	}
	if pm.OccupiedCount() != 0 {
		t.Error("out-of-bounds writes modified the pixmap")
	}
}

func TestPixmap_Occupied(t *testing.T) {
	tests := []struct {
		name string
		c    color.NRGBA
		want bool
	}{
		{"transparent black", color.NRGBA{}, false},
		{"any alpha", color.NRGBA{A: 1}, true},
		{"opaque black", color.NRGBA{A: 255}, true},
		{"all channels without alpha", color.NRGBA{R: 1, G: 1, B: 1}, true},
		{"one zero channel without alpha", color.NRGBA{R: 200, G: 0, B: 200}, false},
		{"red without alpha", color.NRGBA{R: 160}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(1, 1)
			pm.SetPixel(0, 0, tt.c)
			if got := pm.Occupied(0, 0); got != tt.want {
				t.Errorf("Occupied = %v, want %v", got, tt.want)
			}
			want := 0
			if tt.want {
				want = 1
			}
			if got := pm.OccupiedCount(); got != want {
				t.Errorf("OccupiedCount = %d, want %d", got, want)
			}
		})
	}
}

func TestPixmap_Blank(t *testing.T) {
	pm := NewPixmap(20, 20)
	pm.SetPixel(7, 7, color.NRGBA{A: 255})

	if !pm.blank(0, 0, 7, 7, 1) {
		t.Error("rectangle left of the pixel should be blank")
	}
	if pm.blank(0, 0, 8, 8, 1) {
		t.Error("rectangle covering the pixel should not be blank at stride 1")
	}
	// Stride 3 from (0, 0) samples 0, 3, 6: the pixel at 7 is missed.
	if !pm.blank(0, 0, 8, 8, 3) {
		t.Error("stride 3 should skip the pixel at (7, 7)")
	}
	// Stride 7 samples 0 and 7.
	if pm.blank(0, 0, 8, 8, 7) {
		t.Error("stride 7 should hit the pixel at (7, 7)")
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(3, 2)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	pm.SetPixel(2, 1, c)
	pm.Fill(color.NRGBA{})
	pm.SetPixel(2, 1, c)

	img := pm.ToImage()
	if got := img.NRGBAAt(2, 1); got != c {
		t.Errorf("NRGBAAt(2, 1) = %v, want %v", got, c)
	}

	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	if pm.Occupied(0, 0) {
		t.Error("ToImage must return a copy")
	}
}

func BenchmarkPixmap_OccupiedCount(b *testing.B) {
	pm := NewPixmap(640, 480)
	b.ReportAllocs()
	for b.Loop() {
		_ = pm.OccupiedCount()
	}
}
