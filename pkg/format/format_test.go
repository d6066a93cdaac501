package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/format"
	"github.com/leapstack-labs/msglint/pkg/parser"

	// Import dialect packages to register them
	_ "github.com/leapstack-labs/msglint/pkg/dialects/all"
)

// firstMarkup returns the outermost element or fragment in pre-order.
func firstMarkup(n *parser.Node) *parser.Node {
	if n == nil {
		return nil
	}
	if n.Kind == parser.KindElement || n.Kind == parser.KindFragment {
		return n
	}
	for _, c := range n.Nodes {
		if found := firstMarkup(c); found != nil {
			return found
		}
	}
	return nil
}

func parseMarkup(t *testing.T, src string) (*parser.Node, []byte) {
	t.Helper()
	d, ok := dialect.Get("tsx")
	require.True(t, ok)
	tree, err := parser.Parse(src, "test.tsx", d)
	require.NoError(t, err)
	n := firstMarkup(tree.Root)
	require.NotNil(t, n)
	return n, tree.Source
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "self-closing attributes joined on one line",
			input: `const a = <FormattedMessage
    id="another.id"
    defaultMessage="terms and conditions"
    description="terms and conditions"
/>;`,
			expected: `<FormattedMessage id="another.id" defaultMessage="terms and conditions" description="terms and conditions" />`,
		},
		{
			name:     "spread attribute",
			input:    `const a = <FormattedMessage {...messages.terms.and.conditions}/>;`,
			expected: `<FormattedMessage {...messages.terms.and.conditions} />`,
		},
		{
			name:     "self-closing without attributes",
			input:    `const a = <br/>;`,
			expected: `<br />`,
		},
		{
			name:     "boolean attribute",
			input:    `const a = <input disabled value={x} />;`,
			expected: `<input disabled value={x} />`,
		},
		{
			name:     "children copied verbatim",
			input:    "const a = <a\n  href=\"terms.html\"\n>\n  hi {name}\n</a>;",
			expected: "<a href=\"terms.html\">\n  hi {name}\n</a>",
		},
		{
			name:     "fragment",
			input:    "const a = <>\n  <b>x</b> &nbsp;\n</>;",
			expected: "<>\n  <b>x</b> &nbsp;\n</>",
		},
		{
			name:     "nested element attributes normalized",
			input:    "const a = <p><a\n  href=\"x\">y</a></p>;",
			expected: "<p><a href=\"x\">y</a></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, src := parseMarkup(t, tt.input)
			assert.Equal(t, tt.expected, format.Render(n, src))
		})
	}
}

func TestSource(t *testing.T) {
	input := "const a = <a\n  href=\"x\">y</a>;"
	n, src := parseMarkup(t, input)
	assert.Equal(t, "<a\n  href=\"x\">y</a>", format.Source(n, src))
	assert.Empty(t, format.Source(nil, src))
}

func TestRender_Nil(t *testing.T) {
	assert.Empty(t, format.Render(nil, nil))
}

func TestDefaultRenderer(t *testing.T) {
	n, src := parseMarkup(t, `const a = <FormattedMessage {...messages.x}/>;`)
	assert.Equal(t, format.Render(n, src), format.Default.Render(n, src))

	upper := format.RendererFunc(func(*parser.Node, []byte) string { return "X" })
	assert.Equal(t, "X", upper.Render(n, src))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "<e0>intl.formatMessage(m)</e0>", format.Highlight("intl.formatMessage(m)"))
}
