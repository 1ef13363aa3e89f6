package lint

// FileResult holds the diagnostics for a single checked file.
type FileResult struct {
	Path        string
	Diagnostics []Diagnostic
}

// Report is the accumulated result of a run: per-file diagnostics in
// the order files were checked. It is a plain value; running the
// analyzer twice on the same input produces identical reports.
type Report struct {
	FilesChecked int
	Files        []FileResult
}

// Summary holds the finding counts for a run.
type Summary struct {
	Files    int `json:"files"`
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Summarize folds the report into per-severity counts.
func (r *Report) Summarize() Summary {
	s := Summary{Files: r.FilesChecked}
	for _, f := range r.Files {
		s.Total += len(f.Diagnostics)
		for _, d := range f.Diagnostics {
			switch d.Severity {
			case SeverityError:
				s.Errors++
			case SeverityWarning:
				s.Warnings++
			case SeverityInfo:
				s.Info++
			}
		}
	}
	return s
}

// HasErrors reports whether any error-severity finding was emitted.
// Callers map this to the process exit status; warnings and info
// findings never block.
func (r *Report) HasErrors() bool {
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if d.Severity == SeverityError {
				return true
			}
		}
	}
	return false
}
