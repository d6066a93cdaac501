// Package main provides tests for the msglint CLI.
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/msglint/internal/cli"
	"github.com/leapstack-labs/msglint/internal/cli/commands"
	"github.com/leapstack-labs/msglint/internal/cli/config"
	"github.com/leapstack-labs/msglint/pkg/lint"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	output, err := run(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "msglint v") {
		t.Errorf("version output should contain 'msglint v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := run(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	for _, expected := range []string{"lint", "parse", "rules", "baseline", "version"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestLintCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "src/Terms.jsx", `export const Terms = () => (
  <p>
    <FormattedMessage id="a" />
    <a href="/t"><FormattedMessage id="b" /></a>
    <FormattedMessage id="c" />
  </p>
);
`)
	writeFile(t, dir, "src/Clean.jsx", "export const Clean = () => <FormattedMessage id=\"x\" />;\n")

	output, err := run(t, "lint", "--format", "markdown", "src/Clean.jsx")
	if err != nil {
		t.Fatalf("lint of a clean file error = %v, output: %s", err, output)
	}

	output, err = run(t, "-o", "markdown", "lint")
	if err != commands.ErrLintIssues {
		t.Fatalf("expected ErrLintIssues, got %v", err)
	}
	if !strings.Contains(output, "RM01") {
		t.Errorf("lint output should mention RM01, got: %s", output)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "msglint.yaml", "output: yaml\n")

	_, err := run(t, "rules")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("expected an output format error, got %v", err)
	}
}

func TestDocsURLConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(lint.ResetDocsBaseURL)
	writeFile(t, dir, "msglint.yaml", "docs_url: https://docs.example.com/rules/\n")

	output, err := run(t, "rules", "RM01", "--format", "json")
	if err != nil {
		t.Fatalf("rules command error = %v", err)
	}
	if !strings.Contains(output, `"documentation_url": "https://docs.example.com/rules/no-broken-messages.md"`) {
		t.Errorf("rules output should use the configured docs URL, got: %s", output)
	}
}
