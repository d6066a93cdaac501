package output

// LintOutput is the JSON document printed by the lint command.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
	Failed  []LintFailure    `json:"failed,omitempty"`
}

// LintSummary holds aggregate counts.
type LintSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesFailed   int `json:"files_failed"`
	TotalIssues   int `json:"total_issues"`
	Suppressed    int `json:"suppressed,omitempty"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// LintFileResult holds the findings of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is one finding.
type LintDiagnostic struct {
	RuleID           string `json:"rule_id"`
	Rule             string `json:"rule,omitempty"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	Line             int    `json:"line"`
	Column           int    `json:"column"`
	EndLine          int    `json:"end_line"`
	EndColumn        int    `json:"end_column"`
	Highlight        string `json:"highlight,omitempty"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

// LintFailure is a file that could not be linted.
type LintFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}
