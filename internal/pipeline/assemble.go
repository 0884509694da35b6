package pipeline

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/crosscore/pdf-png-converter/internal/assemble"
	"github.com/crosscore/pdf-png-converter/internal/filetype"
	"github.com/crosscore/pdf-png-converter/internal/naming"
	"github.com/crosscore/pdf-png-converter/internal/natsort"
	"github.com/crosscore/pdf-png-converter/internal/scan"
)

// assembleImages composes the snapshot's images into one document in
// natural page order. Images that cannot be placed are skipped with a
// warning; the document is written only when at least one page made it.
func (r *Runner) assembleImages(ctx context.Context, runLog zerolog.Logger, snap *scan.Snapshot, sum *Summary) {
	images := resolveOrder(snap.Images)
	for i, img := range images {
		runLog.Info().Int("page", i+1).Str("image", img.Name).Msg("page order")
	}

	// The target is fixed before composing so the transcript names it up
	// front; later page skips do not change it.
	prefix := naming.DerivePrefix(images[0].Base)
	if prefix == "" {
		prefix = r.cfg.Assemble.FallbackName
	}
	target := naming.NextFreeFile(r.outputParent(snap), prefix, ".pdf")

	res := &AssembleResult{Output: target, ImagesTotal: len(images)}
	sum.Assembly = res

	if r.cfg.Run.DryRun {
		res.Planned = true
		runLog.Info().Str("target", target).Int("images", len(images)).Msg("dry run: would assemble document")
		return
	}

	doc := r.deps.Builder.NewDocument()
	for _, img := range images {
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			runLog.Warn().Int("placed", res.Placed).Msg("run canceled; abandoning composition")
			return
		}
		if err := r.placeOne(runLog, doc, img); err != nil {
			res.Skipped = append(res.Skipped, err)
			continue
		}
		res.Placed++
	}

	if res.Placed == 0 {
		res.Err = ErrNoOutputProduced
		runLog.Error().Int("images", len(images)).Msg("no images could be placed; not writing a document")
		return
	}

	if err := doc.Save(target); err != nil {
		res.Err = err
		runLog.Error().Err(err).Str("target", target).Msg("failed to save document")
		return
	}

	runLog.Info().
		Str("target", target).
		Int("pages", res.Placed).
		Int("skipped", len(res.Skipped)).
		Msg("document assembled")
}

// placeOne verifies one image and places it on a fresh page sized to it.
func (r *Runner) placeOne(runLog zerolog.Logger, doc assemble.Doc, img scan.InputFile) error {
	fail := func(err error) error {
		perr := &ImagePlacementError{Image: img.Name, Err: err}
		runLog.Warn().Err(err).Str("image", img.Name).Msg("skipping image")
		return perr
	}

	if r.det != nil {
		if want, ok := filetype.ClassFor(img.Ext); ok {
			if err := r.det.Verify(img.Path, want); err != nil {
				return fail(err)
			}
		}
	}

	w, h, err := r.deps.Builder.ImageSize(img.Path)
	if err != nil {
		return fail(err)
	}
	if err := doc.AddImagePage(img.Path, w, h); err != nil {
		return fail(err)
	}

	runLog.Info().Str("image", img.Name).Msg("placed page")
	return nil
}

// resolveOrder returns the images in natural page order. The sort is
// stable, so scan enumeration order breaks exact-key ties (zero-padding
// variants of the same number).
func resolveOrder(images []scan.InputFile) []scan.InputFile {
	out := make([]scan.InputFile, len(images))
	copy(out, images)
	sort.SliceStable(out, func(i, j int) bool {
		return natsort.Less(out[i].Base, out[j].Base)
	})
	return out
}
