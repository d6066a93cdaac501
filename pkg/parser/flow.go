package parser

import (
	"bytes"

	"github.com/leapstack-labs/msglint/pkg/dialect"
)

// withFlowFallback returns the typed markup dialect for an untyped markup
// source whose leading comments carry an @flow pragma. Flow files keep the
// ".js" extension, and the annotations they use in components are accepted
// by the TypeScript grammar.
func withFlowFallback(src []byte, d *dialect.Dialect) *dialect.Dialect {
	if !d.AllowsMarkup() || d.IsTyped() || !hasFlowPragma(src) {
		return d
	}
	if tsx, ok := dialect.Get("tsx"); ok {
		return tsx
	}
	return d
}

// hasFlowPragma scans the comments before the first statement.
func hasFlowPragma(src []byte) bool {
	s := bytes.TrimLeft(src, " \t\r\n")
	for {
		switch {
		case bytes.HasPrefix(s, []byte("//")):
			line, rest, _ := bytes.Cut(s[2:], []byte("\n"))
			if isFlowComment(line) {
				return true
			}
			s = rest
		case bytes.HasPrefix(s, []byte("/*")):
			body, rest, ok := bytes.Cut(s[2:], []byte("*/"))
			if !ok {
				return false
			}
			if isFlowComment(body) {
				return true
			}
			s = rest
		default:
			return false
		}
		s = bytes.TrimLeft(s, " \t\r\n")
	}
}

func isFlowComment(text []byte) bool {
	for _, word := range bytes.Fields(text) {
		if string(word) == "@flow" {
			return true
		}
	}
	return false
}
