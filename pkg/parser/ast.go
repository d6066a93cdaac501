package parser

import (
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/token"
)

// Kind is the normalized node category shared by every dialect.
type Kind int

// Node kinds.
const (
	KindScript              Kind = iota // any script construct without a dedicated kind
	KindProgram                         // root of every tree
	KindElement                         // <Name ...>...</Name> or <Name ... />
	KindFragment                        // <>...</>
	KindText                            // raw text between markup children
	KindExpressionContainer             // {expr} inside markup
	KindAttribute                       // name="value" or name={expr}
	KindSpreadAttribute                 // {...expr} inside an opening tag
	KindCallExpression                  // callee(args)
	KindObject                          // { key: value }
	KindProperty                        // key: value inside an object
)

var kindNames = [...]string{
	KindScript:              "script",
	KindProgram:             "program",
	KindElement:             "element",
	KindFragment:            "fragment",
	KindText:                "text",
	KindExpressionContainer: "expression-container",
	KindAttribute:           "attribute",
	KindSpreadAttribute:     "spread-attribute",
	KindCallExpression:      "call-expression",
	KindObject:              "object",
	KindProperty:            "property",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsMarkup returns true for kinds that only occur in markup dialects.
func (k Kind) IsMarkup() bool {
	switch k {
	case KindElement, KindFragment, KindText, KindExpressionContainer,
		KindAttribute, KindSpreadAttribute:
		return true
	default:
		return false
	}
}

// Node is a position-annotated syntax node.
//
// Markup children and script sub-nodes are kept apart: Children is non-nil
// only for elements and fragments and interleaves element, fragment, text and
// expression-container nodes in source order. Whitespace between tags is a
// text node, and adjacent text and character references form one text node.
type Node struct {
	Kind Kind
	Type string // raw grammar node type, informational
	Span token.Span

	// Name is the tag name of an element, the name of an attribute, or the
	// callee of a call expression with whitespace removed.
	Name string
	// NameIsIdentifier is true when an element's tag name is a plain
	// identifier (not a member expression or namespaced name).
	NameIsIdentifier bool
	SelfClosing      bool

	// Attributes holds the attributes and spread attributes of an element,
	// in source order.
	Attributes []*Node
	// Value is the value of an attribute or the argument of a spread attribute.
	Value *Node
	// NameSpan is the span of an element's tag name.
	NameSpan token.Span

	Children []*Node // markup children (elements and fragments only)
	Nodes    []*Node // script sub-nodes in source order
}

// HasChildren returns true if the node carries a markup children list.
func (n *Node) HasChildren() bool {
	return n != nil && n.Children != nil
}

// Tree is the result of parsing one source file.
type Tree struct {
	Root    *Node
	Source  []byte
	Path    string
	Dialect *dialect.Dialect

	lines *token.LineIndex
}

// Representation returns the representation name of the tree.
func (t *Tree) Representation() string {
	if t == nil || t.Dialect == nil {
		return ""
	}
	return t.Dialect.Representation()
}

// Text returns the source text covered by a span.
func (t *Tree) Text(s token.Span) string {
	if t == nil || s.Start.Offset < 0 || s.End.Offset > len(t.Source) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return string(t.Source[s.Start.Offset:s.End.Offset])
}

// Lines returns the line index of the tree's source.
func (t *Tree) Lines() *token.LineIndex {
	if t.lines == nil {
		t.lines = token.NewLineIndex(t.Source)
	}
	return t.lines
}
