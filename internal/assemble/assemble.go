// Package assemble composes image files into a single document, one page
// per image, each page sized to its image.
package assemble

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"
)

// Doc is a document under composition.
type Doc interface {
	// AddImagePage appends a page of width x height points and draws the
	// image file onto it, or leaves the document unchanged on failure.
	AddImagePage(path string, width, height float64) error
	PageCount() int
	Save(path string) error
}

// Builder creates documents and inspects candidate page images.
type Builder interface {
	NewDocument() Doc
	// ImageSize returns the native pixel dimensions of the image at path.
	ImageSize(path string) (width, height float64, err error)
}

// ImageSize decodes only the image header.
func ImageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image header: %w", err)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
