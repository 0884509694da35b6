package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/crosscore/pdf-png-converter/internal/naming"
	"github.com/crosscore/pdf-png-converter/internal/render"
	"github.com/crosscore/pdf-png-converter/internal/scan"
)

// renderAll converts every document in the snapshot to per-page PNG
// files. Documents are independent: a failure is recorded and the batch
// moves on to the next one.
func (r *Runner) renderAll(ctx context.Context, runLog zerolog.Logger, snap *scan.Snapshot, sum *Summary) {
	for _, doc := range snap.Documents {
		if ctx.Err() != nil {
			runLog.Warn().Str("document", doc.Name).Msg("run canceled; stopping before next document")
			break
		}
		sum.Renders = append(sum.Renders, r.renderOne(ctx, runLog, snap, doc))
	}
}

// renderOne renders a single document into a fresh <base>_png directory.
// Page failures are recorded and skipped; the document counts as
// succeeded only when every page was written.
func (r *Runner) renderOne(ctx context.Context, runLog zerolog.Logger, snap *scan.Snapshot, doc scan.InputFile) RenderResult {
	docLog := runLog.With().Str("document", doc.Name).Logger()
	res := RenderResult{Document: doc.Path}

	check, err := r.deps.Preflight.Check(doc.Path)
	if err != nil {
		res.Err = err
		docLog.Error().Err(err).Msg("document failed preflight; skipping")
		return res
	}

	outDir := naming.NextFreeDir(r.outputParent(snap), doc.Base+"_png")
	res.OutputDir = outDir
	res.PagesTotal = check.Pages

	if r.cfg.Run.DryRun {
		res.Planned = true
		docLog.Info().Int("pages", check.Pages).Str("out_dir", outDir).Msg("dry run: would render document")
		return res
	}

	d, err := r.deps.Opener.Open(doc.Path)
	if err != nil {
		res.Err = err
		docLog.Error().Err(err).Msg("failed to open document; skipping")
		return res
	}
	defer d.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		res.Err = fmt.Errorf("failed to create output directory: %w", err)
		docLog.Error().Err(err).Str("out_dir", outDir).Msg("cannot create output directory; skipping")
		return res
	}

	total := d.PageCount()
	if total != check.Pages {
		docLog.Warn().
			Int("preflight_pages", check.Pages).
			Int("renderer_pages", total).
			Msg("page count mismatch; trusting the renderer")
		res.PagesTotal = total
	}

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			docLog.Warn().Int("pages_saved", res.PagesSaved).Msg("run canceled; document left incomplete")
			return res
		}

		pageNo := i + 1
		target := filepath.Join(outDir, fmt.Sprintf("%s_%d.png", doc.Base, pageNo))

		img, err := d.RenderPage(i, r.cfg.Render.Scale)
		if err != nil {
			res.PageErrors = append(res.PageErrors, &PageRenderError{Document: doc.Name, Page: pageNo, Err: err})
			docLog.Warn().Err(err).Int("page", pageNo).Msg("failed to render page; continuing")
			continue
		}
		if err := render.SavePNG(img, target); err != nil {
			res.PageErrors = append(res.PageErrors, &PageRenderError{Document: doc.Name, Page: pageNo, Err: err})
			docLog.Warn().Err(err).Int("page", pageNo).Msg("failed to save page; continuing")
			continue
		}

		res.PagesSaved++
		docLog.Info().Int("page", pageNo).Str("file", target).Msg("saved page")
	}

	if res.Failed() {
		docLog.Warn().
			Int("pages_saved", res.PagesSaved).
			Int("pages_failed", len(res.PageErrors)).
			Msg("document rendered with missing pages")
	} else {
		docLog.Info().Int("pages", res.PagesSaved).Str("out_dir", outDir).Msg("document rendered")
	}
	return res
}
