package output

// CheckDiagnostic is the JSON shape of a single finding.
type CheckDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
}

// CheckFileResult groups the findings for one file.
type CheckFileResult struct {
	Path        string            `json:"path"`
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
}

// CheckSummary holds aggregate counts for a check run.
type CheckSummary struct {
	FilesChecked int `json:"files_checked"`
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
}

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	Summary CheckSummary      `json:"summary"`
	Files   []CheckFileResult `json:"files"`
}
