package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/internal/cli/config"
	"github.com/leapstack-labs/msglint/internal/cli/output"
	"github.com/leapstack-labs/msglint/internal/cli/testutil"
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/lint"
	"github.com/leapstack-labs/msglint/pkg/lint/markup/rules"
	"github.com/leapstack-labs/msglint/pkg/token"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"format", "disable", "severity", "rule", "baseline", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("RM01"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{Disable: []string{"RM01", " RM02 "}})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("RM01"))
		assert.True(t, cfg.IsDisabled("RM02"))
	})

	t.Run("only rules by id or name", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{Rules: []string{"no-broken-messages"}})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("RM01"))
		assert.True(t, cfg.IsDisabled("RM99"))
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := buildLintConfig(nil, &LintOptions{Rules: []string{"XX01"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "XX01" not found`)
	})

	t.Run("project config applies", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Disabled: []string{"RM02"},
			Severity: map[string]string{"RM01": "info"},
			Rules:    map[string]core.RuleOptions{"RM01": {"threshold": 5}},
		}}
		cfg, err := buildLintConfig(projectCfg, &LintOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("RM02"))
		assert.Equal(t, core.SeverityInfo, cfg.GetSeverity("RM01", core.SeverityError))
		assert.Equal(t, 5, cfg.GetRuleOptions("RM01")["threshold"])
	})

	t.Run("invalid project severity", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{Severity: map[string]string{"RM01": "loud"}}}
		_, err := buildLintConfig(projectCfg, &LintOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RM01=loud")
	})
}

func decodeLint(t *testing.T, out string) output.LintOutput {
	t.Helper()
	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	return result
}

func TestRunLint_Project(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, NewLintCommand(), "--format", "json")
	require.ErrorIs(t, err, ErrLintIssues)
	assert.NotContains(t, out, "Usage:")

	result := decodeLint(t, out)
	assert.Equal(t, 3, result.Summary.FilesAnalyzed, "Terms.jsx, Clean.tsx and util.ts")
	assert.Equal(t, 1, result.Summary.TotalIssues)
	assert.Equal(t, 1, result.Summary.Errors)
	assert.Empty(t, result.Failed)

	require.Len(t, result.Files, 1)
	file := result.Files[0]
	assert.Equal(t, "src/components/Terms.jsx", file.Path)
	require.Len(t, file.Diagnostics, 1)

	d := file.Diagnostics[0]
	assert.Equal(t, "RM01", d.RuleID)
	assert.Equal(t, "no-broken-messages", d.Rule)
	assert.Equal(t, "error", d.Severity)
	assert.Equal(t, rules.MsgSeparatedPlaceholders, d.Message)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 2, d.Column)
	assert.Equal(t, 6, d.EndLine)
	assert.Equal(t, 6, d.EndColumn)
	assert.Contains(t, d.Highlight, "<e0><p>")
	assert.NotEmpty(t, d.DocumentationURL)
}

func TestRunLint_Clean(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, NewLintCommand(), "src/components/Clean.tsx")
	require.NoError(t, err)
	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContains(t, out, "0 issues in 1 files")
}

func TestRunLint_Markdown(t *testing.T) {
	setupProject(t)

	out, _, err := execute(t, NewLintCommand(), "--format", "markdown", "src")
	require.ErrorIs(t, err, ErrLintIssues)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertContains(t, out, "## src/components/Terms.jsx")
	testutil.AssertContains(t, out, "- `2:2` **error** RM01:")
	testutil.AssertContains(t, out, "1 issues, 1 errors in 3 files")
}

func TestRunLint_SyntaxError(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, "src/Bad.jsx", testutil.InvalidComponent)

	out, _, err := execute(t, NewLintCommand(), "--format", "json", "src/Bad.jsx", "src/components/Clean.tsx")
	require.ErrorIs(t, err, ErrLintIssues)

	result := decodeLint(t, out)
	assert.Equal(t, 2, result.Summary.FilesAnalyzed)
	assert.Equal(t, 1, result.Summary.FilesFailed)
	assert.Zero(t, result.Summary.TotalIssues)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "src/Bad.jsx", result.Failed[0].Path)
	assert.Contains(t, result.Failed[0].Error, "src/Bad.jsx:1:")
	assert.Contains(t, result.Failed[0].Error, "syntax error")
}

func TestRunLint_Filters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"disabled rule", []string{"--disable", "RM01"}},
		{"severity threshold", []string{"--severity", "error", "src/components/Clean.tsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)
			out, _, err := execute(t, NewLintCommand(), append([]string{"--format", "json"}, tt.args...)...)
			require.NoError(t, err)
			assert.Zero(t, decodeLint(t, out).Summary.TotalIssues)
		})
	}
}

func TestRunLint_SeverityOverride(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, "msglint.yaml", "lint:\n  severity:\n    RM01: hint\n")
	config.ResetConfig()
	_, err := config.LoadConfig("msglint.yaml", nil)
	require.NoError(t, err)

	_, _, err = execute(t, NewLintCommand(), "--format", "json", "src/components")
	require.NoError(t, err, "hints are below the default warning threshold")

	out, _, err := execute(t, NewLintCommand(), "--format", "json", "--severity", "hint", "src/components")
	require.ErrorIs(t, err, ErrLintIssues)
	assert.Equal(t, 1, decodeLint(t, out).Summary.Hints)
}

func TestRunLint_RuleOptions(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, "msglint.yaml", "lint:\n  rules:\n    RM01:\n      threshold: 10\n")
	config.ResetConfig()
	_, err := config.LoadConfig("msglint.yaml", nil)
	require.NoError(t, err)

	_, _, err = execute(t, NewLintCommand(), "src/components")
	require.NoError(t, err, "a run of seven nodes is below the threshold")
}

func TestRunLint_InvalidOptionsAbort(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, "msglint.yaml", "lint:\n  rules:\n    RM01:\n      treshold: 10\n")
	config.ResetConfig()
	_, err := config.LoadConfig("msglint.yaml", nil)
	require.NoError(t, err)

	_, _, err = execute(t, NewLintCommand(), "src/components")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLintIssues)
	assert.Contains(t, err.Error(), "RM01")
}

func TestRunLint_Baseline(t *testing.T) {
	dir := setupProject(t)

	_, _, err := execute(t, NewLintCommand(), "--baseline")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseline create")

	_, _, err = execute(t, NewBaselineCommand(), "create", "--format", "json")
	require.NoError(t, err)

	out, _, err := execute(t, NewLintCommand(), "--format", "json", "--baseline")
	require.NoError(t, err)
	result := decodeLint(t, out)
	assert.Zero(t, result.Summary.TotalIssues)
	assert.Equal(t, 1, result.Summary.Suppressed)

	// A new broken message is still reported.
	testutil.WriteFile(t, dir, "src/components/More.jsx", testutil.BrokenComponent)
	out, _, err = execute(t, NewLintCommand(), "--format", "json", "--baseline")
	require.ErrorIs(t, err, ErrLintIssues)
	result = decodeLint(t, out)
	assert.Equal(t, 1, result.Summary.TotalIssues)
	assert.Equal(t, 1, result.Summary.Suppressed)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "src/components/More.jsx", result.Files[0].Path)
}

func TestRenderLintResults(t *testing.T) {
	// Text mode simulates a terminal; plain styles keep the assertions readable.
	t.Setenv("NO_COLOR", "1")

	report := &lintReport{
		Analyzed:   3,
		Suppressed: 2,
		Results: []lintFileResult{{
			Path: "src/Terms.jsx",
			Diagnostics: []lint.Diagnostic{{
				RuleID:    "RM01",
				Severity:  core.SeverityError,
				Message:   rules.MsgNestedPlaceholder,
				Pos:       token.Position{Line: 4, Column: 8},
				EndPos:    token.Position{Line: 4, Column: 30},
				Highlight: "<e0><FormattedMessage id=\"b\" /></e0>",
			}},
		}},
		Failed: []lintFileResult{{
			Path: "src/Bad.jsx",
			Err:  errors.New("src/Bad.jsx:1:33: syntax error: Unexpected \";\""),
		}},
	}

	tests := []struct {
		name     string
		renderer func() *testutil.TestRenderer
		mode     output.OutputMode
		contains []string
	}{
		{
			name:     "text",
			renderer: testutil.NewTestRendererText,
			mode:     output.ModeText,
			contains: []string{"src/Terms.jsx", "4:8", "RM01", "1 issues, 1 errors in 3 files, 1 failed, 2 suppressed by baseline"},
		},
		{
			name:     "markdown",
			renderer: testutil.NewTestRendererMarkdown,
			mode:     output.ModeMarkdown,
			contains: []string{"## src/Terms.jsx", "- `4:8` **error** RM01:", "## Failed", "- src/Bad.jsx:1:33: syntax error"},
		},
		{
			name:     "auto without a terminal",
			renderer: testutil.NewTestRendererAuto,
			mode:     output.ModeMarkdown,
			contains: []string{"# Lint Results", "**Summary:**"},
		},
		{
			name:     "json",
			renderer: testutil.NewTestRendererJSON,
			mode:     output.ModeJSON,
			contains: []string{`"rule": "no-broken-messages"`, `"suppressed": 2`, `"path": "src/Bad.jsx"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tt.renderer()
			assert.True(t, renderLintResults(tr.Renderer, report))
			testutil.AssertOutputMode(t, tr, tt.mode)
			for _, want := range tt.contains {
				testutil.AssertContains(t, tr.Output()+tr.ErrorOutput(), want)
			}

			tr.Reset()
			assert.False(t, renderLintResults(tr.Renderer, &lintReport{Analyzed: 4}))
			assert.NotEmpty(t, tr.Output())
		})
	}
}

func TestRenderLintResults_Clean(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tr := testutil.NewTestRendererText()
	hasIssues := renderLintResults(tr.Renderer, &lintReport{Analyzed: 4})
	assert.False(t, hasIssues)
	testutil.AssertContains(t, tr.Output(), "No lint issues found in 4 files")
}
