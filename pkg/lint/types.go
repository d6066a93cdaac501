package lint

import (
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/token"
)

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Rule     Rule `json:"-"` // rule that produced the finding
	Severity core.Severity
	Message  string
	FilePath string
	Pos      token.Position
	EndPos   token.Position // end of the offending range

	// Highlight is the offending code rendered back to text and wrapped in
	// <e0>...</e0> markers.
	Highlight string

	// Remediation metadata
	DocumentationURL string // URL to rule documentation
	ImpactScore      int    // 0-100, used for summary weighting
}

// Span returns the offending range of the diagnostic.
func (d Diagnostic) Span() token.Span {
	return token.Span{Start: d.Pos, End: d.EndPos}
}
