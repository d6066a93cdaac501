package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/internal/testutil"
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/dialect"
	_ "github.com/leapstack-labs/msglint/pkg/dialects/all"
	"github.com/leapstack-labs/msglint/pkg/lint"
	"github.com/leapstack-labs/msglint/pkg/lint/markup"
	_ "github.com/leapstack-labs/msglint/pkg/lint/markup/rules"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

const brokenSource = `const Terms = () => (
  <p>
    <FormattedMessage id="a" /> <a href="/t"><FormattedMessage id="b" /></a>
  </p>
);
`

func parse(t *testing.T, src, dialectName string) *parser.Tree {
	t.Helper()
	d, ok := dialect.Get(dialectName)
	require.True(t, ok)
	tree, err := parser.Parse(src, "Terms."+dialectName, d)
	require.NoError(t, err)
	return tree
}

func TestAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name     string
		config   *lint.Config
		want     int
		severity core.Severity
	}{
		{
			name:     "defaults",
			config:   nil,
			want:     1,
			severity: core.SeverityError,
		},
		{
			name:     "severity override",
			config:   lint.NewConfig().SetSeverity("RM01", core.SeverityWarning),
			want:     1,
			severity: core.SeverityWarning,
		},
		{
			name:   "disabled",
			config: lint.NewConfig().Disable("RM01"),
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := markup.NewAnalyzer(tt.config, markup.WithLogger(testutil.NewTestLogger(t)))
			diags, err := a.Analyze(parse(t, brokenSource, "jsx"))
			require.NoError(t, err)
			require.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Equal(t, "RM01", diags[0].RuleID)
				assert.Equal(t, tt.severity, diags[0].Severity)
			}
		})
	}
}

func TestAnalyzer_LogsEachRule(t *testing.T) {
	logger, rec := testutil.NewRecordingLogger(t)
	a := markup.NewAnalyzer(nil, markup.WithLogger(logger))

	_, err := a.Analyze(parse(t, brokenSource, "tsx"))
	require.NoError(t, err)
	assert.Equal(t, len(lint.GetTreeRulesByRepresentation(markup.Representation)), rec.Count("rule evaluated"))
	assert.Contains(t, rec.String(), "rule=RM01")
}

func TestAnalyzer_Accepts(t *testing.T) {
	a := markup.NewAnalyzer(nil)
	assert.Equal(t, "markup", a.Name())
	assert.True(t, a.Accepts(parse(t, "const a = <div />;", "jsx").Representation()))
	assert.False(t, a.Accepts(parse(t, "const a: number = 1;", "ts").Representation()))
}

func TestAnalyzer_NilTree(t *testing.T) {
	diags, err := markup.NewAnalyzer(nil).Analyze(nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestCheckTree_MissingTree(t *testing.T) {
	rule, ok := lint.GetRuleByID("RM01")
	require.True(t, ok)

	for name, ctx := range map[string]*lint.TreeContext{
		"nil context": nil,
		"nil tree":    {},
	} {
		t.Run(name, func(t *testing.T) {
			diags, err := rule.CheckTree(ctx, nil)
			assert.Nil(t, diags)

			var cfgErr *lint.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "RM01", cfgErr.RuleID)
			assert.Empty(t, cfgErr.Got)
		})
	}
}
