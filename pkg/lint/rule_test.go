package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// mockTreeRule implements TreeRule for testing
type mockTreeRule struct {
	id             string
	name           string
	group          string
	description    string
	severity       core.Severity
	configKeys     []string
	representation string
}

func (m *mockTreeRule) ID() string                     { return m.id }
func (m *mockTreeRule) Name() string                   { return m.name }
func (m *mockTreeRule) Group() string                  { return m.group }
func (m *mockTreeRule) Description() string            { return m.description }
func (m *mockTreeRule) DefaultSeverity() core.Severity { return m.severity }
func (m *mockTreeRule) ConfigKeys() []string           { return m.configKeys }
func (m *mockTreeRule) Representation() string         { return m.representation }
func (m *mockTreeRule) Link() string                   { return BuildDocURL(m.name) }

// Documentation methods (return empty for mocks)
func (m *mockTreeRule) Rationale() string   { return "" }
func (m *mockTreeRule) BadExample() string  { return "" }
func (m *mockTreeRule) GoodExample() string { return "" }
func (m *mockTreeRule) Fix() string         { return "" }

func (m *mockTreeRule) CheckTree(_ *TreeContext, _ map[string]any) ([]Diagnostic, error) {
	return nil, nil
}

func TestTreeRuleInterface(t *testing.T) {
	rule := &mockTreeRule{
		id:             "TST01",
		name:           "test-rule",
		group:          "testing",
		description:    "A test tree rule",
		severity:       core.SeverityWarning,
		configKeys:     []string{"max_count"},
		representation: "markup-ast",
	}

	var _ Rule = rule
	var _ TreeRule = rule

	assert.Equal(t, "TST01", rule.ID())
	assert.Equal(t, "test-rule", rule.Name())
	assert.Equal(t, "testing", rule.Group())
	assert.Equal(t, "A test tree rule", rule.Description())
	assert.Equal(t, core.SeverityWarning, rule.DefaultSeverity())
	assert.Equal(t, []string{"max_count"}, rule.ConfigKeys())
	assert.Equal(t, "markup-ast", rule.Representation())

	diags, err := rule.CheckTree(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestGetRuleInfo(t *testing.T) {
	rule := &mockTreeRule{
		id:             "TST01",
		name:           "test-rule",
		group:          "testing",
		description:    "A test tree rule",
		severity:       core.SeverityError,
		configKeys:     []string{"opt1"},
		representation: "markup-ast",
	}

	info := GetRuleInfo(rule)

	assert.Equal(t, "TST01", info.ID)
	assert.Equal(t, "test-rule", info.Name)
	assert.Equal(t, "testing", info.Group)
	assert.Equal(t, "A test tree rule", info.Description)
	assert.Equal(t, core.SeverityError, info.DefaultSeverity)
	assert.Equal(t, []string{"opt1"}, info.ConfigKeys)
	assert.Equal(t, "markup-ast", info.Representation)
	assert.Equal(t, DefaultDocsBaseURL+"/test-rule.md", info.DocumentationURL)
}

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	RegisterTreeRule(&mockTreeRule{id: "REG02", name: "second", group: "b", representation: "markup-ast"})
	RegisterTreeRule(&mockTreeRule{id: "REG01", name: "first", group: "a", representation: "markup-ast"})
	RegisterTreeRule(&mockTreeRule{id: "REG03", name: "third", group: "a", representation: "script-ast"})

	assert.Equal(t, 3, Count())

	all := GetAllTreeRules()
	require.Len(t, all, 3)
	assert.Equal(t, "REG01", all[0].ID())
	assert.Equal(t, "REG02", all[1].ID())
	assert.Equal(t, "REG03", all[2].ID())

	markup := GetTreeRulesByRepresentation("markup-ast")
	require.Len(t, markup, 2)
	assert.Equal(t, "REG01", markup[0].ID())

	group := GetTreeRulesByGroup("a")
	require.Len(t, group, 2)
	assert.Equal(t, "REG03", group[1].ID())

	byID, ok := GetRuleByID("REG02")
	require.True(t, ok)
	assert.Equal(t, "second", byID.Name())

	byName, ok := GetRuleByID("third")
	require.True(t, ok)
	assert.Equal(t, "REG03", byName.ID())

	_, ok = GetRuleByID("NOPE")
	assert.False(t, ok)

	infos := AllRules()
	require.Len(t, infos, 3)
	assert.Equal(t, "REG01", infos[0].ID)

	Clear()
	assert.Equal(t, 0, Count())
}

func TestTreeContext_Render(t *testing.T) {
	src := []byte("abc")
	tree := &parser.Tree{Source: src}
	n := &parser.Node{Kind: parser.KindScript}
	n.Span.Start.Offset = 1
	n.Span.End.Offset = 3

	ctx := NewTreeContext(tree)
	assert.Equal(t, "bc", ctx.Render(n))
	assert.NotNil(t, ctx.Log())

	ctx.Renderer = nil
	ctx.Logger = nil
	assert.Equal(t, "bc", ctx.Render(n))
	assert.NotNil(t, ctx.Log())
}

func TestDiagnostic_Span(t *testing.T) {
	d := Diagnostic{}
	d.Pos.Line, d.Pos.Column = 1, 2
	d.EndPos.Line, d.EndPos.Column = 3, 4

	span := d.Span()
	assert.Equal(t, d.Pos, span.Start)
	assert.Equal(t, d.EndPos, span.End)
}
