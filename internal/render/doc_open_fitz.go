package render

import (
	"image"

	fitz "github.com/gen2brain/go-fitz"
)

// baseDPI is the document point resolution; the render scale multiplies it.
const baseDPI = 72

// FitzOpener implements Opener using github.com/gen2brain/go-fitz.
type FitzOpener struct{}

func (FitzOpener) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return fitzDoc{doc}, nil
}

// --- Adapters ---

type fitzDoc struct{ *fitz.Document }

func (d fitzDoc) PageCount() int { return d.NumPage() }

func (d fitzDoc) RenderPage(index int, scale float64) (image.Image, error) {
	// go-fitz renders by DPI (0-based page indexing); documents are
	// 72 DPI at scale 1.0, so scale 4.0 rasterizes at 288 DPI.
	img, err := d.ImageDPI(index, baseDPI*scale)
	if err != nil {
		return nil, err
	}
	return img, nil
}
