package parser

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/msglint/pkg/token"
)

// SyntaxError represents a parse failure with position information.
type SyntaxError struct {
	Path    string
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.Path, e.Pos.Line, e.Pos.Column, e.Message)
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// ErrGrammarUnavailable is returned when the tree-sitter grammar of a dialect cannot be loaded.
var ErrGrammarUnavailable = errors.New("tree-sitter grammar not available")

// Common error messages
const (
	ErrMarkupNotAllowed = "markup is not allowed in %s sources"
	ErrUnexpectedSyntax = "unexpected %q"
	ErrMissingSyntax    = "missing %s"
)
