package assemble

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
)

// PDFBuilder implements Builder using github.com/jung-kurt/gofpdf. Pages
// are sized in points, one point per image pixel.
type PDFBuilder struct{}

// NewBuilder creates a PDF document builder.
func NewBuilder() *PDFBuilder { return &PDFBuilder{} }

func (PDFBuilder) NewDocument() Doc {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: 1, Ht: 1},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &pdfDoc{pdf: pdf}
}

func (PDFBuilder) ImageSize(path string) (float64, float64, error) {
	return ImageSize(path)
}

// --- Adapters ---

type pdfDoc struct {
	pdf   *gofpdf.Fpdf
	pages int
}

func (d *pdfDoc) AddImagePage(path string, width, height float64) error {
	opts := gofpdf.ImageOptions{ImageType: imageType(path)}

	// Register before adding the page so a bad image cannot leave an
	// empty page behind. gofpdf errors are sticky; clear after reading
	// so one bad image does not poison the whole document.
	d.pdf.RegisterImageOptions(path, opts)
	if d.pdf.Err() {
		err := d.pdf.Error()
		d.pdf.ClearError()
		return fmt.Errorf("failed to register image: %w", err)
	}

	d.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
	d.pdf.ImageOptions(path, 0, 0, width, height, false, opts, 0, "")
	if d.pdf.Err() {
		err := d.pdf.Error()
		d.pdf.ClearError()
		return fmt.Errorf("failed to place image: %w", err)
	}

	d.pages++
	log.Debug().
		Str("image", path).
		Float64("width", width).
		Float64("height", height).
		Msg("placed image on new page")
	return nil
}

func (d *pdfDoc) PageCount() int { return d.pages }

func (d *pdfDoc) Save(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save document to %s: %w", path, err)
	}
	return nil
}

// imageType maps a file extension to the format tag gofpdf expects.
func imageType(path string) string {
	return strings.TrimPrefix(strings.ToUpper(filepath.Ext(path)), ".")
}
