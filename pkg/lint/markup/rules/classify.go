package rules

import (
	"golang.org/x/net/html/atom"

	"github.com/leapstack-labs/msglint/pkg/lint/markup/internal/ast"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// DefaultPlaceholder is the component that renders a translated message.
const DefaultPlaceholder = "FormattedMessage"

// inlineTags are the HTML tags that may appear inside a translatable string
// without splitting it.
var inlineTags = map[atom.Atom]struct{}{
	atom.A: {}, atom.Abbr: {}, atom.B: {}, atom.Bdi: {}, atom.Bdo: {},
	atom.Br: {}, atom.Cite: {}, atom.Code: {}, atom.Data: {}, atom.Del: {},
	atom.Dfn: {}, atom.Em: {}, atom.Font: {}, atom.I: {}, atom.Ins: {},
	atom.Kbd: {}, atom.Mark: {}, atom.Q: {}, atom.Rb: {}, atom.Rp: {},
	atom.Rt: {}, atom.Rtc: {}, atom.Ruby: {}, atom.S: {}, atom.Samp: {},
	atom.Small: {}, atom.Span: {}, atom.Strike: {}, atom.Strong: {}, atom.Sub: {},
	atom.Sup: {}, atom.Time: {}, atom.Tt: {}, atom.U: {}, atom.Var: {},
	atom.Wbr: {},
}

// IsInlineTag reports whether name is an HTML tag allowed inside a string.
// Tag names are case-sensitive: <B> is a component, not a tag.
func IsInlineTag(name string) bool {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return false
	}
	_, ok := inlineTags[a]
	return ok
}

// NodeCounts is the result of CountNodeTypes.
type NodeCounts struct {
	Placeholders int // placeholder elements
	NonBreaking  int // every other element
}

// IsBroken reports whether the counted run splits a translatable string.
func (c NodeCounts) IsBroken() bool {
	return c.Placeholders > 1 || c.NonBreaking > 0
}

// Classifier decides which markup nodes are placeholders and which nodes
// break a run of translatable content.
type Classifier struct {
	Placeholders map[string]bool
	ExtraTags    map[string]bool
}

// DefaultClassifier returns a classifier that knows FormattedMessage and the
// built-in inline tags only.
func DefaultClassifier() *Classifier {
	return NewClassifier([]string{DefaultPlaceholder}, nil)
}

// NewClassifier builds a classifier from placeholder names and extra
// non-breaking tag names.
func NewClassifier(placeholders, extraTags []string) *Classifier {
	c := &Classifier{
		Placeholders: make(map[string]bool, len(placeholders)),
		ExtraTags:    make(map[string]bool, len(extraTags)),
	}
	for _, name := range placeholders {
		c.Placeholders[name] = true
	}
	for _, name := range extraTags {
		c.ExtraTags[name] = true
	}
	return c
}

// IsPlaceholder reports whether n is an element with a placeholder name.
func (c *Classifier) IsPlaceholder(n *parser.Node) bool {
	return ast.IsIdentifierElement(n) && c.Placeholders[n.Name]
}

// IsBreaking reports whether n ends a run of translatable content.
// Text, placeholders and inline tags continue the run; expression
// containers, fragments and any other element end it.
func (c *Classifier) IsBreaking(n *parser.Node) bool {
	switch {
	case n == nil:
		return true
	case n.Kind == parser.KindText:
		return false
	case ast.IsIdentifierElement(n):
		return !c.Placeholders[n.Name] && !IsInlineTag(n.Name) && !c.ExtraTags[n.Name]
	default:
		return true
	}
}

// CountNodeTypes counts placeholders and other elements in nodes and in the
// markup children of every descendant. Fragments are descended but not
// counted.
func (c *Classifier) CountNodeTypes(nodes []*parser.Node) NodeCounts {
	var counts NodeCounts
	c.count(nodes, &counts)
	return counts
}

func (c *Classifier) count(nodes []*parser.Node, counts *NodeCounts) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Kind == parser.KindElement {
			if n.NameIsIdentifier && c.Placeholders[n.Name] {
				counts.Placeholders++
			} else {
				counts.NonBreaking++
			}
		}
		c.count(n.Children, counts)
	}
}

// IsBrokenString reports whether a run of non-breaking nodes splits a
// translatable string.
func (c *Classifier) IsBrokenString(nodes []*parser.Node) bool {
	return c.CountNodeTypes(nodes).IsBroken()
}

var defaultClassifier = DefaultClassifier()

// CountNodeTypes counts nodes with the default classifier.
func CountNodeTypes(nodes []*parser.Node) NodeCounts {
	return defaultClassifier.CountNodeTypes(nodes)
}

// IsBrokenString reports whether nodes split a string under the default
// classifier.
func IsBrokenString(nodes []*parser.Node) bool {
	return defaultClassifier.IsBrokenString(nodes)
}
