package lint

import "github.com/solstack-labs/solstyle/pkg/lint/source"

// Analyzer runs registered style rules against source files.
//
// Analysis is pure with respect to its inputs: files go in, a Report
// comes out. Rules that fail to match unusual formatting simply emit
// nothing; a malformed file never aborts the run.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer with the given configuration.
// A nil config enables every category with defaults.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{config: config}
}

// AnalyzeFile runs all enabled rules against a single file, category by
// category in pass order, and returns the diagnostics in emission order.
func (a *Analyzer) AnalyzeFile(f *source.File) []Diagnostic {
	if f == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, category := range PassOrder {
		if !a.config.CategoryEnabled(category) {
			continue
		}
		opts := a.config.CategoryOptions(category)

		for _, rule := range GetRulesByGroup(category) {
			if a.config.IsDisabled(rule.ID()) {
				continue
			}

			diags := rule.CheckSource(f, opts)

			// Apply severity overrides keyed by qualified name
			for i := range diags {
				diags[i].Severity = a.config.ResolveSeverity(rule.Name(), diags[i].Severity)
			}
			diagnostics = append(diagnostics, diags...)
		}
	}
	return diagnostics
}

// Run analyzes files in order and accumulates a Report. Every file is
// counted as checked, including files with no findings.
func (a *Analyzer) Run(files []*source.File) *Report {
	report := &Report{}
	for _, f := range files {
		if f == nil {
			continue
		}
		report.FilesChecked++
		diags := a.AnalyzeFile(f)
		if len(diags) > 0 {
			report.Files = append(report.Files, FileResult{
				Path:        f.Path,
				Diagnostics: diags,
			})
		}
	}
	return report
}
