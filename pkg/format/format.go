package format

import "github.com/leapstack-labs/msglint/pkg/parser"

// Renderer renders a node of a source file back to text.
type Renderer interface {
	Render(n *parser.Node, src []byte) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(n *parser.Node, src []byte) string

// Render calls f(n, src).
func (f RendererFunc) Render(n *parser.Node, src []byte) string {
	return f(n, src)
}

// Default is the renderer used when none is configured.
var Default Renderer = RendererFunc(Render)

// Render prints n generator-style.
func Render(n *parser.Node, src []byte) string {
	p := newPrinter(src)
	p.formatNode(n)
	return p.String()
}

// Source returns the source text covered by n.
func Source(n *parser.Node, src []byte) string {
	if n == nil {
		return ""
	}
	p := newPrinter(src)
	p.slice(n.Span)
	return p.String()
}

// Highlight wraps rendered text in the <e0> highlight markers.
func Highlight(rendered string) string {
	return "<e0>" + rendered + "</e0>"
}
