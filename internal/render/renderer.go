// Package render abstracts rasterizing document pages to images.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rs/zerolog/log"
)

// Document abstracts an open paginated document.
type Document interface {
	PageCount() int
	// RenderPage rasterizes the 0-based page at the given linear scale
	// (1.0 = 72 DPI).
	RenderPage(index int, scale float64) (image.Image, error)
	Close() error
}

// Opener abstracts opening a document path into a Document.
type Opener interface {
	Open(path string) (Document, error)
}

// SavePNG writes img to path as a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	bounds := img.Bounds()
	log.Debug().
		Str("file", path).
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("saved page image")
	return nil
}
