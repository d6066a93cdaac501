package parser

import (
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/token"
)

// tree-sitter node types the converter cares about.
const (
	tsProgram        = "program"
	tsComment        = "comment"
	tsError          = "ERROR"
	tsJSXElement     = "jsx_element"
	tsJSXFragment    = "jsx_fragment"
	tsJSXSelfClosing = "jsx_self_closing_element"
	tsJSXOpening     = "jsx_opening_element"
	tsJSXClosing     = "jsx_closing_element"
	tsJSXExpression  = "jsx_expression"
	tsJSXAttribute   = "jsx_attribute"
	tsJSXText        = "jsx_text"
	tsCharReference  = "html_character_reference"
	tsSpreadElement  = "spread_element"
	tsCallExpression = "call_expression"
	tsObject         = "object"
	tsPair           = "pair"
	tsIdentifier     = "identifier"
	tsJSXIdentifier  = "jsx_identifier"
	fieldName        = "name"
	fieldOpenTag     = "open_tag"
	fieldCloseTag    = "close_tag"
	fieldFunction    = "function"
	fieldKey         = "key"
	tokenGreater     = ">"
	tokenLess        = "<"
	tokenLessSlash   = "</"
)

// converter turns a tree-sitter tree into the normalized Node tree.
type converter struct {
	src     []byte
	lines   *token.LineIndex
	dialect *dialect.Dialect
	path    string
	err     *SyntaxError
}

func (c *converter) span(start, end uint) token.Span {
	return c.lines.Span(int(start), int(end))
}

func (c *converter) nodeSpan(n sitter.Node) token.Span {
	return c.span(n.StartByte(), n.EndByte())
}

func (c *converter) text(n sitter.Node) string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(c.src)) || start > end {
		return ""
	}
	return string(c.src[start:end])
}

func (c *converter) fail(offset uint, format string, args ...any) {
	if c.err != nil {
		return
	}
	c.err = &SyntaxError{
		Path:    c.path,
		Pos:     c.lines.Position(int(offset)),
		Message: fmt.Sprintf(format, args...),
	}
}

// convert converts one tree-sitter node and its subtree.
func (c *converter) convert(n sitter.Node) *Node {
	if n.IsNull() {
		return nil
	}

	switch n.Type() {
	case tsJSXElement:
		return c.convertElement(n)
	case tsJSXSelfClosing:
		return c.convertSelfClosing(n)
	case tsJSXFragment:
		return c.convertLegacyFragment(n)
	case tsJSXExpression:
		return c.markup(&Node{
			Kind:  KindExpressionContainer,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Nodes: c.convertNamedChildren(n),
		}, n)
	case tsJSXText, tsCharReference:
		return c.markup(&Node{Kind: KindText, Type: tsJSXText, Span: c.nodeSpan(n)}, n)
	case tsCallExpression:
		return &Node{
			Kind:  KindCallExpression,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Name:  stripSpace(c.text(n.ChildByFieldName(fieldFunction))),
			Nodes: c.convertNamedChildren(n),
		}
	case tsObject:
		return &Node{
			Kind:  KindObject,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Nodes: c.convertNamedChildren(n),
		}
	case tsPair:
		return &Node{
			Kind:  KindProperty,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Name:  c.text(n.ChildByFieldName(fieldKey)),
			Nodes: c.convertNamedChildren(n),
		}
	case tsProgram:
		return &Node{
			Kind:  KindProgram,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Nodes: c.convertNamedChildren(n),
		}
	default:
		return &Node{
			Kind:  KindScript,
			Type:  n.Type(),
			Span:  c.nodeSpan(n),
			Nodes: c.convertNamedChildren(n),
		}
	}
}

// markup rejects markup nodes in dialects that do not allow them.
func (c *converter) markup(node *Node, n sitter.Node) *Node {
	if !c.dialect.AllowsMarkup() {
		c.fail(n.StartByte(), ErrMarkupNotAllowed, c.dialect.Name)
	}
	return node
}

func (c *converter) convertNamedChildren(n sitter.Node) []*Node {
	count := n.NamedChildCount()
	if count == 0 {
		return nil
	}
	nodes := make([]*Node, 0, count)
	for i := range count {
		child := n.NamedChild(i)
		if child.IsNull() || child.Type() == tsComment {
			continue
		}
		if node := c.convert(child); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// convertElement handles <Name ...>children</Name> and <>children</>.
func (c *converter) convertElement(n sitter.Node) *Node {
	open := n.ChildByFieldName(fieldOpenTag)
	closeTag := n.ChildByFieldName(fieldCloseTag)
	if open.IsNull() || closeTag.IsNull() {
		open, closeTag = findTags(n)
	}

	node := &Node{
		Kind: KindFragment,
		Type: n.Type(),
		Span: c.nodeSpan(n),
	}
	if !open.IsNull() {
		c.fillTag(node, open)
	}

	contentStart, contentEnd := n.StartByte(), n.EndByte()
	if !open.IsNull() {
		contentStart = open.EndByte()
	}
	if !closeTag.IsNull() {
		contentEnd = closeTag.StartByte()
	}
	node.Children = c.markupChildren(n, contentStart, contentEnd, func(child sitter.Node) bool {
		return child.Type() != tsJSXOpening && child.Type() != tsJSXClosing
	})
	return c.markup(node, n)
}

// convertLegacyFragment handles grammars that emit a dedicated fragment node
// whose delimiters are anonymous tokens.
func (c *converter) convertLegacyFragment(n sitter.Node) *Node {
	contentStart, contentEnd := n.StartByte(), n.EndByte()
	seenOpen := false
	for i := range n.ChildCount() {
		child := n.Child(i)
		switch child.Type() {
		case tokenGreater:
			if !seenOpen {
				contentStart = child.EndByte()
				seenOpen = true
			}
		case tokenLess, tokenLessSlash:
			if seenOpen {
				contentEnd = child.StartByte()
			}
		}
	}

	node := &Node{
		Kind: KindFragment,
		Type: n.Type(),
		Span: c.nodeSpan(n),
	}
	node.Children = c.markupChildren(n, contentStart, contentEnd, func(sitter.Node) bool { return true })
	return c.markup(node, n)
}

func (c *converter) convertSelfClosing(n sitter.Node) *Node {
	node := &Node{
		Kind:        KindFragment,
		Type:        n.Type(),
		Span:        c.nodeSpan(n),
		SelfClosing: true,
		Children:    []*Node{},
	}
	c.fillTag(node, n)
	return c.markup(node, n)
}

// fillTag reads the name and attributes of an opening or self-closing tag.
// A tag without a name leaves the node a fragment.
func (c *converter) fillTag(node *Node, tag sitter.Node) {
	name := tag.ChildByFieldName(fieldName)
	if !name.IsNull() {
		node.Kind = KindElement
		node.Name = c.text(name)
		node.NameSpan = c.nodeSpan(name)
		node.NameIsIdentifier = name.Type() == tsIdentifier || name.Type() == tsJSXIdentifier
	}

	for i := range tag.NamedChildCount() {
		child := tag.NamedChild(i)
		if child.IsNull() || sameNode(child, name) {
			continue
		}
		switch child.Type() {
		case tsJSXAttribute:
			node.Attributes = append(node.Attributes, c.convertAttribute(child))
		case tsJSXExpression:
			node.Attributes = append(node.Attributes, c.convertSpreadAttribute(child))
		}
	}
}

func (c *converter) convertAttribute(n sitter.Node) *Node {
	attr := &Node{
		Kind: KindAttribute,
		Type: n.Type(),
		Span: c.nodeSpan(n),
	}
	named := 0
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.IsNull() || child.Type() == tsComment {
			continue
		}
		if named == 0 {
			attr.Name = c.text(child)
		} else if attr.Value == nil {
			attr.Value = c.convert(child)
			attr.Nodes = append(attr.Nodes, attr.Value)
		}
		named++
	}
	return attr
}

func (c *converter) convertSpreadAttribute(n sitter.Node) *Node {
	attr := &Node{
		Kind: KindSpreadAttribute,
		Type: n.Type(),
		Span: c.nodeSpan(n),
	}
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.IsNull() || child.Type() == tsComment {
			continue
		}
		target := child
		if child.Type() == tsSpreadElement && child.NamedChildCount() > 0 {
			target = child.NamedChild(0)
		}
		attr.Value = c.convert(target)
		attr.Nodes = append(attr.Nodes, attr.Value)
		break
	}
	return attr
}

// markupChildren collects the markup children of an element or fragment.
// Elements and expression containers come from the grammar; every gap
// between them inside [start, end) becomes one text node.
func (c *converter) markupChildren(n sitter.Node, start, end uint, include func(sitter.Node) bool) []*Node {
	children := []*Node{}
	cursor := start

	addText := func(to uint) {
		if to > cursor {
			children = append(children, &Node{
				Kind: KindText,
				Type: tsJSXText,
				Span: c.span(cursor, to),
			})
		}
	}

	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if child.IsNull() || !include(child) {
			continue
		}
		if child.StartByte() < start || child.EndByte() > end {
			continue
		}
		switch child.Type() {
		case tsJSXElement, tsJSXSelfClosing, tsJSXFragment, tsJSXExpression:
			addText(child.StartByte())
			if node := c.convert(child); node != nil {
				children = append(children, node)
			}
			cursor = child.EndByte()
		}
	}
	addText(end)
	return children
}

// findTags locates the opening and closing tags of an element by type.
func findTags(n sitter.Node) (sitter.Node, sitter.Node) {
	var open, closeTag sitter.Node
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		switch child.Type() {
		case tsJSXOpening:
			if open.IsNull() {
				open = child
			}
		case tsJSXClosing:
			closeTag = child
		}
	}
	return open, closeTag
}

// firstError returns the first ERROR or missing node in pre-order.
func firstError(n sitter.Node) (sitter.Node, bool) {
	if n.IsNull() || !n.HasError() && !n.IsMissing() {
		return sitter.Node{}, false
	}
	if n.Type() == tsError || n.IsMissing() {
		return n, true
	}
	for i := range n.ChildCount() {
		if found, ok := firstError(n.Child(i)); ok {
			return found, true
		}
	}
	return n, true
}

func sameNode(a, b sitter.Node) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
