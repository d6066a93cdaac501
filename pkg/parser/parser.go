// Package parser turns JavaScript and TypeScript sources, with or without
// JSX markup, into a position-annotated syntax tree.
//
// # Usage
//
//	d, _ := dialect.Get("jsx")
//	tree, err := parser.Parse(src, "Component.jsx", d)
//	if err != nil {
//	    // *parser.SyntaxError carries the offending line and column
//	}
//
// ParseFile reads a file and infers the dialect from its extension:
//
//	tree, err := parser.ParseFile("src/Component.tsx")
//
// # Pipeline
//
// Parsing happens in two stages. The source is first validated with
// esbuild, whose parser is strict for every loader and reports readable
// messages. The tree itself is then built with the tree-sitter grammar of
// the dialect and normalized into Node values:
//
//	source → esbuild (validate) → tree-sitter (build) → Node tree
//
// Lines in every Position are 1-based; columns are 0-based UTF-16 code units.
package parser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/token"
)

// ErrNoDialect is returned by ParseFile when no dialect claims the file extension.
var ErrNoDialect = errors.New("no dialect registered for file extension")

// Parse parses src with the given dialect.
func Parse(src, path string, d *dialect.Dialect) (*Tree, error) {
	return ParseContext(context.Background(), []byte(src), path, d)
}

// ParseContext parses src with the given dialect. A context that is already
// done stops the parse before tree-sitter runs. Markup files marked with an
// @flow pragma are parsed with the typed markup dialect.
func ParseContext(ctx context.Context, src []byte, path string, d *dialect.Dialect) (*Tree, error) {
	if d == nil {
		return nil, dialect.ErrDialectRequired
	}
	d = withFlowFallback(src, d)

	lines := token.NewLineIndex(src)
	if se := validate(src, path, d, lines); se != nil {
		return nil, se
	}

	g, err := loadGrammar(d.Grammar)
	if err != nil {
		return nil, err
	}
	tsTree, err := g.parse(ctx, src)
	if err != nil {
		return nil, err
	}
	defer tsTree.Close()

	root := tsTree.RootNode()
	if bad, ok := firstError(root); ok {
		return nil, syntaxErrorAt(src, path, lines, bad.StartByte(), bad.EndByte(), bad.IsMissing(), bad.Type())
	}

	c := &converter{src: src, lines: lines, dialect: d, path: path}
	node := c.convert(root)
	if c.err != nil {
		return nil, c.err
	}

	return &Tree{
		Root:    node,
		Source:  src,
		Path:    path,
		Dialect: d,
		lines:   lines,
	}, nil
}

// ParseFile reads path and parses it with the dialect registered for its
// extension.
func ParseFile(path string) (*Tree, error) {
	d, ok := dialect.ForExtension(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDialect, path)
	}
	src, err := os.ReadFile(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseContext(context.Background(), src, path, d)
}

func syntaxErrorAt(src []byte, path string, lines *token.LineIndex, start, end uint, missing bool, nodeType string) *SyntaxError {
	msg := fmt.Sprintf(ErrMissingSyntax, nodeType)
	if !missing {
		snippet := ""
		if end <= uint(len(src)) && start < end {
			snippet = string(src[start:end])
			if len(snippet) > 20 {
				snippet = snippet[:20]
			}
		}
		msg = fmt.Sprintf(ErrUnexpectedSyntax, snippet)
	}
	return &SyntaxError{
		Path:    path,
		Pos:     lines.Position(int(start)),
		Message: msg,
	}
}
