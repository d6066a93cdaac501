package lint

import "github.com/leapstack-labs/msglint/pkg/parser"

// Provider is the base interface for all lint providers.
type Provider interface {
	Name() string
}

// TreeProvider analyzes parsed source files.
// Implemented by the markup analyzer.
type TreeProvider interface {
	Provider

	// Accepts reports whether the provider can analyze trees of the given
	// representation.
	Accepts(representation string) bool

	// AnalyzeTree runs the provider's rules and returns diagnostics.
	AnalyzeTree(tree *parser.Tree) ([]Diagnostic, error)
}
