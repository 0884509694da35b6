package pipeline

import "github.com/crosscore/pdf-png-converter/internal/scan"

// RenderResult describes the outcome for one source document.
type RenderResult struct {
	Document   string // source path
	OutputDir  string
	PagesTotal int
	PagesSaved int
	Planned    bool // dry run: counted but not rendered
	Err        error
	PageErrors []error
}

// Failed reports whether the document missed any page or never rendered.
func (r *RenderResult) Failed() bool {
	return r.Err != nil || len(r.PageErrors) > 0
}

// AssembleResult describes one image-to-document composition.
type AssembleResult struct {
	Output      string
	ImagesTotal int
	Placed      int
	Planned     bool
	Skipped     []error
	Err         error
}

// Failed reports whether no document was written.
func (a *AssembleResult) Failed() bool { return a.Err != nil }

// Partial reports whether the document was written with pages missing.
func (a *AssembleResult) Partial() bool { return len(a.Skipped) > 0 }

// Summary is the run-level accounting behind the final transcript and
// the process exit status.
type Summary struct {
	Mode     scan.Mode
	DryRun   bool
	Canceled bool
	Renders  []RenderResult
	Assembly *AssembleResult
}

// Clean reports whether every unit of the run succeeded.
func (s *Summary) Clean() bool {
	if s.Canceled {
		return false
	}
	for i := range s.Renders {
		if s.Renders[i].Failed() {
			return false
		}
	}
	if s.Assembly != nil && (s.Assembly.Failed() || s.Assembly.Partial()) {
		return false
	}
	return true
}

// PagesSaved totals the page images written across all documents.
func (s *Summary) PagesSaved() int {
	n := 0
	for i := range s.Renders {
		n += s.Renders[i].PagesSaved
	}
	return n
}
