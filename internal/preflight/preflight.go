// Package preflight validates candidate documents before the renderer is
// handed a file it would choke on, and supplies the authoritative page
// count for planning.
package preflight

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/rs/zerolog/log"

	"github.com/crosscore/pdf-png-converter/internal/filetype"
)

// Result summarizes a passed check.
type Result struct {
	Pages int
}

// Checker validates a document path and reports its page count.
type Checker interface {
	Check(path string) (Result, error)
}

// PDFChecker verifies content type with magic bytes and structure with
// pdfcpu's relaxed validation.
type PDFChecker struct {
	detector *filetype.Detector
	verify   bool
}

// New creates a PDFChecker. When verifyContent is false the magic-byte
// check is skipped and only the structural checks run.
func New(verifyContent bool) *PDFChecker {
	return &PDFChecker{detector: filetype.New(), verify: verifyContent}
}

// Check validates the document at path and returns its page count.
func (c *PDFChecker) Check(path string) (Result, error) {
	if c.verify {
		if err := c.detector.Verify(path, filetype.ClassPDF); err != nil {
			return Result{}, err
		}
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return Result{}, fmt.Errorf("document failed validation: %w", err)
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("pdf page count failed: %w", err)
	}

	log.Debug().Str("file", path).Int("pages", n).Msg("preflight passed")
	return Result{Pages: n}, nil
}
