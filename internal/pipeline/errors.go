package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoOutputProduced means composition placed no pages, so no document
// was written.
var ErrNoOutputProduced = errors.New("no output produced")

// PageRenderError reports a page that could not be rendered or saved.
// It is recorded per page and never aborts the document batch.
type PageRenderError struct {
	Document string
	Page     int // 1-based
	Err      error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("page %d of %s: %v", e.Page, e.Document, e.Err)
}

func (e *PageRenderError) Unwrap() error { return e.Err }

// ImagePlacementError reports an image that could not be placed on a
// page. The image is skipped and composition continues.
type ImagePlacementError struct {
	Image string
	Err   error
}

func (e *ImagePlacementError) Error() string {
	return fmt.Sprintf("cannot place %s: %v", e.Image, e.Err)
}

func (e *ImagePlacementError) Unwrap() error { return e.Err }
