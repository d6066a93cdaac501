package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/msglint/pkg/parser"
)

func el(name string, attrs []*parser.Node, children ...*parser.Node) *parser.Node {
	if children == nil {
		children = []*parser.Node{}
	}
	return &parser.Node{
		Kind:             parser.KindElement,
		Name:             name,
		NameIsIdentifier: true,
		Attributes:       attrs,
		Children:         children,
	}
}

func attr(name string, value *parser.Node) *parser.Node {
	return &parser.Node{Kind: parser.KindAttribute, Name: name, Value: value, Nodes: []*parser.Node{value}}
}

func names(nodes []*parser.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestWalk_Order(t *testing.T) {
	inner := el("inner", nil)
	root := &parser.Node{
		Kind: parser.KindProgram,
		Nodes: []*parser.Node{
			el("outer", []*parser.Node{attr("icon", inner)},
				el("child", nil),
			),
		},
	}

	var visited []string
	Walk(root, func(n *parser.Node) bool {
		visited = append(visited, n.Kind.String()+":"+n.Name)
		return true
	})

	assert.Equal(t, []string{
		"program:",
		"element:outer",
		"attribute:icon",
		"element:inner",
		"element:child",
	}, visited)
}

func TestWalk_SkipDescendants(t *testing.T) {
	root := el("outer", nil, el("a", nil, el("deep", nil)), el("b", nil))

	var visited []string
	Walk(root, func(n *parser.Node) bool {
		visited = append(visited, n.Name)
		return n.Name != "a"
	})
	assert.Equal(t, []string{"outer", "a", "b"}, visited)
}

func TestWalkPayload(t *testing.T) {
	fm := el("FormattedMessage",
		[]*parser.Node{attr("values", el("inPayload", nil))},
		el("ownChild", nil),
	)

	var visited []string
	WalkPayload(fm, func(n *parser.Node) bool {
		if n.Kind == parser.KindElement {
			visited = append(visited, n.Name)
		}
		return true
	})
	assert.Equal(t, []string{"inPayload"}, visited)

	WalkPayload(nil, func(*parser.Node) bool {
		t.Fatal("nil element has no payload")
		return true
	})
}

func TestCollect(t *testing.T) {
	root := &parser.Node{
		Kind: parser.KindProgram,
		Nodes: []*parser.Node{
			el("a", nil, el("b", nil), &parser.Node{Kind: parser.KindText}),
		},
	}

	assert.Equal(t, []string{"a", "b"}, names(CollectChildLists(root)))
	assert.Empty(t, CollectChildLists(nil))
}

func TestIsIdentifierElement(t *testing.T) {
	assert.True(t, IsIdentifierElement(el("a", nil)))
	assert.False(t, IsIdentifierElement(nil))
	assert.False(t, IsIdentifierElement(&parser.Node{Kind: parser.KindElement, Name: "Foo.Bar"}))
	assert.False(t, IsIdentifierElement(&parser.Node{Kind: parser.KindFragment}))
}
