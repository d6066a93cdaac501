// Package dialect provides source dialect configuration for the parser.
//
// A dialect describes one flavour of JavaScript source: whether markup
// (JSX) is allowed, whether type annotations are allowed, which tree-sitter
// grammar builds its tree and which esbuild loader validates it. Concrete
// dialects are registered from pkg/dialects/*/ packages.
package dialect

import (
	"slices"
	"strings"
)

// Representation names describe the shape of the tree a dialect produces.
// Rules declare the representation they operate on.
const (
	// RepresentationScript is a plain script tree without markup nodes.
	RepresentationScript = "script-ast"
	// RepresentationMarkup is a script tree that may contain markup nodes.
	RepresentationMarkup = "markup-ast"
)

// Dialect represents a JavaScript source dialect configuration.
type Dialect struct {
	Name        string
	Description string
	Extensions  []string // file extensions including the dot, e.g. ".tsx"

	// Grammar is the tree-sitter language name used to build the tree.
	Grammar string
	// Loader is the esbuild loader name ("js", "jsx", "ts", "tsx") used for
	// strict syntax validation.
	Loader string

	markup bool
	typed  bool
}

// GetName returns the dialect name.
func (d *Dialect) GetName() string {
	return d.Name
}

// AllowsMarkup returns true if JSX markup is valid in this dialect.
func (d *Dialect) AllowsMarkup() bool {
	return d.markup
}

// IsTyped returns true if type annotations are valid in this dialect.
func (d *Dialect) IsTyped() bool {
	return d.typed
}

// Representation returns the representation name of trees parsed with this dialect.
func (d *Dialect) Representation() string {
	if d.markup {
		return RepresentationMarkup
	}
	return RepresentationScript
}

// HandlesExtension returns true if ext (with or without the leading dot)
// belongs to this dialect.
func (d *Dialect) HandlesExtension(ext string) bool {
	ext = normalizeExt(ext)
	return slices.Contains(d.Extensions, ext)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	dialect *Dialect
}

// NewDialect creates a new dialect builder with the given name.
// The loader defaults to the name.
func NewDialect(name string) *Builder {
	return &Builder{
		dialect: &Dialect{
			Name:   name,
			Loader: name,
		},
	}
}

// Extends copies the configuration of a parent dialect.
// Settings applied after Extends override the inherited ones.
func (b *Builder) Extends(parent *Dialect) *Builder {
	if parent == nil {
		return b
	}
	b.dialect.Description = parent.Description
	b.dialect.Extensions = slices.Clone(parent.Extensions)
	b.dialect.Grammar = parent.Grammar
	b.dialect.markup = parent.markup
	b.dialect.typed = parent.typed
	return b
}

// Description sets the human-readable description.
func (b *Builder) Description(desc string) *Builder {
	b.dialect.Description = desc
	return b
}

// Extensions replaces the file extensions handled by the dialect.
func (b *Builder) Extensions(exts ...string) *Builder {
	b.dialect.Extensions = b.dialect.Extensions[:0]
	for _, ext := range exts {
		b.dialect.Extensions = append(b.dialect.Extensions, normalizeExt(ext))
	}
	return b
}

// Grammar sets the tree-sitter grammar name.
func (b *Builder) Grammar(name string) *Builder {
	b.dialect.Grammar = name
	return b
}

// Loader sets the esbuild loader name.
func (b *Builder) Loader(name string) *Builder {
	b.dialect.Loader = name
	return b
}

// Markup allows or forbids JSX markup.
func (b *Builder) Markup(allowed bool) *Builder {
	b.dialect.markup = allowed
	return b
}

// Typed allows or forbids type annotations.
func (b *Builder) Typed(allowed bool) *Builder {
	b.dialect.typed = allowed
	return b
}

// Build returns the constructed dialect.
func (b *Builder) Build() *Dialect {
	return b.dialect
}
