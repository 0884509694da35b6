// Package pipeline drives one conversion run: scan the folder, select the
// mode, process every unit sequentially and account for the outcome.
// Units fail independently; the run keeps going and the summary tells the
// caller how it went.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crosscore/pdf-png-converter/internal/assemble"
	"github.com/crosscore/pdf-png-converter/internal/config"
	"github.com/crosscore/pdf-png-converter/internal/filetype"
	"github.com/crosscore/pdf-png-converter/internal/preflight"
	"github.com/crosscore/pdf-png-converter/internal/render"
	"github.com/crosscore/pdf-png-converter/internal/scan"
)

// Dependencies are the collaborators a Runner drives. All are interfaces
// so tests can substitute fakes.
type Dependencies struct {
	Preflight preflight.Checker
	Opener    render.Opener
	Builder   assemble.Builder
}

// Runner executes one conversion run over a folder.
type Runner struct {
	cfg  config.Config
	deps Dependencies
	det  *filetype.Detector // nil when content verification is off
}

// New creates a Runner with the given configuration and collaborators.
func New(cfg config.Config, deps Dependencies) *Runner {
	r := &Runner{cfg: cfg, deps: deps}
	if cfg.Scan.VerifyContent {
		r.det = filetype.New()
	}
	return r
}

// Run scans dir, selects the operation mode and executes it. The returned
// Summary reflects per-unit outcomes; a non-nil error means the run never
// started (bad input path, unreadable folder, or contents that select no
// operation).
func (r *Runner) Run(ctx context.Context, dir string) (*Summary, error) {
	runLog := log.With().Str("run_id", uuid.NewString()).Logger()

	snap, err := scan.Scan(dir, scan.Options{
		DocumentExts: r.cfg.Scan.DocumentExts,
		ImageExts:    r.cfg.Scan.ImageExts,
	})
	if err != nil {
		return nil, err
	}

	runLog.Info().
		Str("dir", snap.Dir).
		Int("documents", len(snap.Documents)).
		Int("images", len(snap.Images)).
		Int("others", len(snap.Others)).
		Msg("scanned folder")

	dec := scan.Decide(snap)
	if dec.Mode == scan.ModeInvalid {
		return nil, fmt.Errorf("%w: %s", scan.ErrInconclusiveMode, dec.Reason)
	}
	runLog.Info().Stringer("mode", dec.Mode).Msg("selected mode")

	sum := &Summary{Mode: dec.Mode, DryRun: r.cfg.Run.DryRun}
	switch dec.Mode {
	case scan.ModeDocumentToImages:
		r.renderAll(ctx, runLog, snap, sum)
	case scan.ModeImagesToDocument:
		r.assembleImages(ctx, runLog, snap, sum)
	}
	if ctx.Err() != nil {
		sum.Canceled = true
	}

	r.logSummary(runLog, sum)
	return sum, nil
}

// outputParent returns where outputs for the scanned folder are rooted.
func (r *Runner) outputParent(snap *scan.Snapshot) string {
	if r.cfg.Run.OutputDir != "" {
		return r.cfg.Run.OutputDir
	}
	return snap.Dir
}

func (r *Runner) logSummary(runLog zerolog.Logger, sum *Summary) {
	if sum.Canceled {
		runLog.Warn().Msg("run interrupted before completion")
	}
	if sum.DryRun {
		runLog.Info().Msg("dry run complete; nothing was written")
		return
	}

	switch sum.Mode {
	case scan.ModeDocumentToImages:
		ok, failed := 0, 0
		for i := range sum.Renders {
			if sum.Renders[i].Failed() {
				failed++
			} else {
				ok++
			}
		}
		ev := runLog.Info()
		msg := "completed successfully"
		if failed > 0 {
			ev = runLog.Warn()
			msg = "completed with some errors"
		}
		ev.Int("documents_ok", ok).
			Int("documents_failed", failed).
			Int("pages_saved", sum.PagesSaved()).
			Msg(msg)

	case scan.ModeImagesToDocument:
		a := sum.Assembly
		switch {
		case a == nil:
			runLog.Warn().Msg("nothing was assembled")
		case a.Failed():
			runLog.Error().Err(a.Err).Msg("no document produced")
		case a.Partial():
			runLog.Warn().
				Str("output", a.Output).
				Int("pages", a.Placed).
				Int("skipped", len(a.Skipped)).
				Msg("completed with some errors")
		default:
			runLog.Info().
				Str("output", a.Output).
				Int("pages", a.Placed).
				Msg("completed successfully")
		}
	}
}
