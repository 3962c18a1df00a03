package wordcloud

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format is an image encoding used by Save and Encode.
type Format int

const (
	// FormatPNG is lossless and keeps transparency.
	FormatPNG Format = iota
	// FormatJPEG is lossy and drops transparency.
	FormatJPEG
	// FormatGIF is paletted.
	FormatGIF
	// FormatBMP uses golang.org/x/image/bmp.
	FormatBMP
	// FormatTIFF uses golang.org/x/image/tiff.
	FormatTIFF
)

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath returns the format implied by the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Image returns a copy of the canvas. If a background was configured with
// WithBackground, the copy is flattened onto it.
func (c *Canvas) Image() *image.NRGBA {
	img := c.pixmap.ToImage()
	if c.background == nil {
		return img
	}

	out := image.NewNRGBA(img.Rect)
	draw.Draw(out, out.Rect, image.NewUniform(c.background.NRGBA(255)), image.Point{}, draw.Src)
	draw.Draw(out, out.Rect, img, image.Point{}, draw.Over)
	return out
}

// Encode writes the canvas to w in the given format.
func (c *Canvas) Encode(w io.Writer, format Format) error {
	img := c.Image()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, flatten(img), &jpeg.Options{Quality: 90})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("wordcloud: encode %v: %w", format, err)
	}
	return nil
}

// Save writes the canvas to path, choosing the format from its extension.
// The canvas stays usable whether or not saving succeeds.
func (c *Canvas) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("wordcloud: save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wordcloud: save: %w", cerr)
		}
	}()

	return c.Encode(f, format)
}

// flatten composites img onto opaque black, as formats without alpha do.
func flatten(img *image.NRGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	draw.Draw(out, out.Rect, image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(out, out.Rect, img, image.Point{}, draw.Over)
	return out
}
