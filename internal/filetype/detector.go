// Package filetype identifies file content from magic bytes, so a file
// whose extension lies is caught before conversion wastes work on it.
package filetype

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

// Class is the content class detected from magic bytes.
type Class int

const (
	ClassOther Class = iota
	ClassPDF
	ClassPNG
	ClassJPEG
)

func (c Class) String() string {
	switch c {
	case ClassPDF:
		return "PDF document"
	case ClassPNG:
		return "PNG image"
	case ClassJPEG:
		return "JPEG image"
	default:
		return "other"
	}
}

// ClassFor maps a file extension to the content class it promises, or
// false when no promise is attached to the extension.
func ClassFor(ext string) (Class, bool) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return ClassPDF, true
	case ".png":
		return ClassPNG, true
	case ".jpg", ".jpeg":
		return ClassJPEG, true
	}
	return ClassOther, false
}

// Info contains detected file type information
type Info struct {
	MIMEType  string
	Extension string
	Class     Class
}

// Detector handles file type detection using magic bytes
type Detector struct{}

// New creates a new file type detector
func New() *Detector {
	return &Detector{}
}

// Detect detects the actual file type using magic bytes, not filename
func (d *Detector) Detect(filePath string) (*Info, error) {
	mtype, err := mimetype.DetectFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	info := &Info{
		MIMEType:  mtype.String(),
		Extension: mtype.Extension(),
	}
	switch {
	case mtype.Is("application/pdf"):
		info.Class = ClassPDF
	case mtype.Is("image/png"):
		info.Class = ClassPNG
	case mtype.Is("image/jpeg"):
		info.Class = ClassJPEG
	}

	log.Debug().Str("mime", info.MIMEType).Str("ext", info.Extension).Str("file", filePath).Msg("detected file type")
	return info, nil
}

// Verify checks that the content at filePath matches the promised class.
func (d *Detector) Verify(filePath string, want Class) error {
	info, err := d.Detect(filePath)
	if err != nil {
		return err
	}
	if info.Class != want {
		return fmt.Errorf("content is %s, expected %s", info.MIMEType, want)
	}
	return nil
}
