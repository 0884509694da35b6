package scan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconclusiveMode means the folder contents select no operation.
var ErrInconclusiveMode = errors.New("folder contents do not select an operation")

// Mode is the operation selected from a folder's contents.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeDocumentToImages
	ModeImagesToDocument
)

func (m Mode) String() string {
	switch m {
	case ModeDocumentToImages:
		return "document-to-images"
	case ModeImagesToDocument:
		return "images-to-document"
	default:
		return "invalid"
	}
}

// Decision is the outcome of the mode decision table. Reason explains an
// invalid decision with exact counts and file names.
type Decision struct {
	Mode   Mode
	Reason string
}

// Decide applies the decision table to a snapshot:
//
//	documents >= 1, images == 0  -> render every document to images
//	documents == 0, images >= 2  -> assemble the images into one document
//	anything else                -> invalid
//
// Other files never influence the decision; they only show up in the
// diagnostic when nothing convertible was found.
func Decide(snap *Snapshot) Decision {
	d, p := len(snap.Documents), len(snap.Images)
	switch {
	case d >= 1 && p == 0:
		return Decision{Mode: ModeDocumentToImages}
	case d == 0 && p >= 2:
		return Decision{Mode: ModeImagesToDocument}
	case d > 0 && p > 0:
		return Decision{Mode: ModeInvalid, Reason: fmt.Sprintf(
			"folder mixes %d document(s) [%s] and %d image(s) [%s]; need only documents or only images",
			d, fileNames(snap.Documents), p, fileNames(snap.Images))}
	case p == 1:
		return Decision{Mode: ModeInvalid, Reason: fmt.Sprintf(
			"only one image (%s); need at least 2 to assemble a document", snap.Images[0].Name)}
	default:
		return Decision{Mode: ModeInvalid, Reason: fmt.Sprintf(
			"no documents or images found (%d other file(s) ignored)", len(snap.Others))}
	}
}

func fileNames(files []InputFile) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}
