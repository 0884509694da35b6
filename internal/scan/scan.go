// Package scan lists a folder once and decides which conversion the run
// will perform from what it finds there.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sentinel errors for pre-flight failures.
var (
	ErrInvalidInputPath = errors.New("input path does not exist or is not a directory")
	ErrDirectoryRead    = errors.New("cannot read input directory")
)

// Kind classifies a scanned file by its extension.
type Kind int

const (
	KindOther Kind = iota
	KindDocument
	KindImage
)

// InputFile is one regular file found by a folder scan.
type InputFile struct {
	Path string // absolute path
	Name string // file name with extension
	Base string // file name without extension
	Ext  string // lower-cased extension, including the dot
	Kind Kind
}

// Snapshot is the one-shot, non-recursive listing a run works from. It is
// never refreshed; files appearing or vanishing afterwards surface as
// per-unit errors downstream. Slices keep directory enumeration order.
type Snapshot struct {
	Dir       string
	Documents []InputFile
	Images    []InputFile
	Others    []InputFile
}

// Options configures which extensions count as documents and images.
type Options struct {
	DocumentExts []string
	ImageExts    []string
}

// DefaultOptions classifies .pdf as document and .png as image.
func DefaultOptions() Options {
	return Options{
		DocumentExts: []string{".pdf"},
		ImageExts:    []string{".png"},
	}
}

// Scan lists dir once, non-recursively, and classifies every regular file
// by extension. Directories, symlinks and other non-regular entries are
// ignored.
func Scan(dir string, opts Options) (*Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInputPath, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryRead, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	snap := &Snapshot{Dir: abs}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		rawExt := filepath.Ext(name)
		f := InputFile{
			Path: filepath.Join(abs, name),
			Name: name,
			Base: strings.TrimSuffix(name, rawExt),
			Ext:  strings.ToLower(rawExt),
		}
		f.Kind = classify(f.Ext, opts)
		switch f.Kind {
		case KindDocument:
			snap.Documents = append(snap.Documents, f)
		case KindImage:
			snap.Images = append(snap.Images, f)
		default:
			snap.Others = append(snap.Others, f)
		}
	}

	log.Debug().
		Str("dir", abs).
		Int("documents", len(snap.Documents)).
		Int("images", len(snap.Images)).
		Int("others", len(snap.Others)).
		Msg("folder snapshot taken")

	return snap, nil
}

func classify(ext string, opts Options) Kind {
	for _, e := range opts.DocumentExts {
		if ext == e {
			return KindDocument
		}
	}
	for _, e := range opts.ImageExts {
		if ext == e {
			return KindImage
		}
	}
	return KindOther
}
