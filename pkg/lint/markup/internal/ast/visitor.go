// Package ast provides tree traversal utilities for markup lint rules.
package ast

import (
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// Walk traverses a tree depth-first in pre-order and calls fn for each node.
// Attributes are visited before script sub-nodes, and both before markup
// children, which matches source order for every construct.
// If fn returns false, the node's descendants are skipped.
func Walk(node *parser.Node, fn func(node *parser.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	walkNode(node, fn)
}

func walkNode(node *parser.Node, fn func(node *parser.Node) bool) {
	for _, attr := range node.Attributes {
		Walk(attr, fn)
	}
	for _, sub := range node.Nodes {
		Walk(sub, fn)
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// WalkPayload traverses the payload of an element: its attributes, their
// values and everything beneath them. The element's own children are not
// part of the payload.
func WalkPayload(element *parser.Node, fn func(node *parser.Node) bool) {
	if element == nil {
		return
	}
	for _, attr := range element.Attributes {
		Walk(attr, fn)
	}
}

// CollectChildLists returns every node carrying a markup children list, in
// pre-order.
func CollectChildLists(root *parser.Node) []*parser.Node {
	var parents []*parser.Node
	Walk(root, func(n *parser.Node) bool {
		if n.HasChildren() {
			parents = append(parents, n)
		}
		return true
	})
	return parents
}

// IsIdentifierElement reports whether n is an element whose tag name is a
// plain identifier.
func IsIdentifierElement(n *parser.Node) bool {
	return n != nil && n.Kind == parser.KindElement && n.NameIsIdentifier && n.Name != ""
}
