// Package format renders syntax nodes back to source text.
//
// Render prints markup the way a code generator would: attributes of a tag
// are joined on one line and self-closing tags end in " />". Text, expression
// containers and script constructs are copied from the source unchanged.
// Source returns the exact source slice of a node.
package format

import (
	"bytes"

	"github.com/leapstack-labs/msglint/pkg/parser"
	"github.com/leapstack-labs/msglint/pkg/token"
)

// Printer renders nodes of one source file.
type Printer struct {
	src    []byte
	output *bytes.Buffer
}

func newPrinter(src []byte) *Printer {
	return &Printer{
		src:    src,
		output: &bytes.Buffer{},
	}
}

// String returns the rendered output.
func (p *Printer) String() string {
	return p.output.String()
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// slice copies the source covered by span.
func (p *Printer) slice(s token.Span) {
	start, end := s.Start.Offset, s.End.Offset
	if start < 0 || end > len(p.src) || start > end {
		return
	}
	p.output.Write(p.src[start:end])
}

// formatList prints count items separated by sep.
func (p *Printer) formatList(count int, format func(i int), sep string) {
	for i := range count {
		if i > 0 {
			p.write(sep)
		}
		format(i)
	}
}

func (p *Printer) formatNode(n *parser.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case parser.KindElement:
		p.formatElement(n)
	case parser.KindFragment:
		p.formatFragment(n)
	case parser.KindAttribute:
		p.formatAttribute(n)
	case parser.KindSpreadAttribute:
		p.write("{...")
		p.formatNode(n.Value)
		p.write("}")
	default:
		p.slice(n.Span)
	}
}
