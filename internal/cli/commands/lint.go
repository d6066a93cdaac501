package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/msglint/internal/baseline"
	"github.com/leapstack-labs/msglint/internal/cli/config"
	"github.com/leapstack-labs/msglint/internal/cli/output"
	"github.com/leapstack-labs/msglint/internal/discover"
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/lint"
	"github.com/leapstack-labs/msglint/pkg/lint/markup"
	_ "github.com/leapstack-labs/msglint/pkg/lint/markup/rules" // register markup rules
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// ErrLintIssues is returned when findings remain or files failed to lint.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories, default the project root
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Baseline bool     // Suppress findings stored in the baseline
	Watch    bool     // Re-lint when files change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Find broken translatable messages",
		Long: `Analyze JavaScript and TypeScript sources for translatable messages
that are split into separately translated fragments.

Files are discovered by extension (.js .jsx .mjs .cjs .ts .tsx) and
filtered by the include and exclude globs of msglint.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the whole project
  msglint lint

  # Lint specific paths
  msglint lint src/components src/App.jsx

  # Output as JSON
  msglint lint --format json

  # Only report what is not in the baseline
  msglint lint --baseline

  # Re-lint on every change
  msglint lint --watch src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVar(&opts.Baseline, "baseline", false, "Suppress findings recorded with 'msglint baseline create'")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and lint again")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}
	l := &linter{
		cfg:       cfg,
		opts:      opts,
		analyzer:  newAnalyzer(lintCfg, cmdCtx),
		threshold: threshold,
		logger:    cmdCtx.Logger,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	report, err := l.run(ctx)
	if err != nil {
		return err
	}
	hasIssues := renderLintResults(r, report)

	if opts.Watch {
		return watchAndLint(ctx, cmdCtx, l.watchOptions(), func(ctx context.Context) error {
			report, err := l.run(ctx)
			if err != nil {
				r.Error(err.Error())
				return nil
			}
			renderLintResults(r, report)
			return nil
		})
	}

	if hasIssues {
		return ErrLintIssues
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	// Project config first (lower precedence)
	var projectLint *config.LintConfig
	if cfg != nil {
		projectLint = cfg.Lint
	}
	lintCfg, invalid := lint.FromLintConfig(projectLint)
	if len(invalid) > 0 {
		return nil, fmt.Errorf("unknown severity in lint config: %s", strings.Join(invalid, ", "))
	}

	// CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// --rule accepts IDs or names and restricts the run to them
	for _, ref := range opts.Rules {
		rule, ok := lint.GetRuleByID(strings.TrimSpace(ref))
		if !ok {
			return nil, fmt.Errorf("rule %q not found", ref)
		}
		lintCfg.Only(rule.ID())
	}

	return lintCfg, nil
}

func newAnalyzer(lintCfg *lint.Config, cmdCtx *CommandContext) *markup.Analyzer {
	return markup.NewAnalyzer(lintCfg, markup.WithLogger(cmdCtx.Logger))
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string // path relative to the project root
	Diagnostics []lint.Diagnostic
	Err         error
}

// lintReport is the outcome of one lint run.
type lintReport struct {
	Analyzed   int
	Suppressed int
	Results    []lintFileResult // files with findings, sorted by path
	Failed     []lintFileResult // files that could not be parsed, sorted by path
}

type linter struct {
	cfg       *config.Config
	opts      *LintOptions
	analyzer  *markup.Analyzer
	threshold core.Severity
	logger    *slog.Logger
}

func (l *linter) discoverOptions() discover.Options {
	return discover.Options{
		Root:    l.cfg.ProjectRoot,
		Include: l.cfg.Include,
		Exclude: l.cfg.Exclude,
		Dialect: l.cfg.Dialect,
	}
}

func (l *linter) watchOptions() watchOptions {
	return watchOptions{paths: l.opts.Paths, discover: l.discoverOptions()}
}

func (l *linter) jobs() int {
	if l.cfg.Jobs > 0 {
		return l.cfg.Jobs
	}
	return runtime.NumCPU()
}

// run discovers, parses and analyzes every file once.
func (l *linter) run(ctx context.Context) (*lintReport, error) {
	files, err := discover.Files(ctx, l.opts.Paths, l.discoverOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to discover files: %w", err)
	}
	l.logger.Debug("files discovered", slog.Int("count", len(files)))

	results, err := l.lintFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	report := &lintReport{Analyzed: len(files)}

	var counts map[string]int
	if l.opts.Baseline {
		counts, err = l.loadBaseline(ctx)
		if err != nil {
			return nil, err
		}
	}

	for _, res := range results {
		if res.Err != nil {
			report.Failed = append(report.Failed, res)
			continue
		}
		diags := filterBySeverity(res.Diagnostics, l.threshold)
		diags, suppressed := baseline.Filter(counts, res.Path, diags)
		report.Suppressed += suppressed
		if len(diags) > 0 {
			report.Results = append(report.Results, lintFileResult{Path: res.Path, Diagnostics: diags})
		}
	}

	return report, nil
}

// lintFiles parses and analyzes files concurrently. A file that fails to
// parse is reported in its result; a rule configuration error aborts the run.
func (l *linter) lintFiles(ctx context.Context, files []discover.File) ([]lintFileResult, error) {
	results := make([]lintFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.jobs())
	for i, f := range files {
		g.Go(func() error {
			diags, err := l.lintFile(gctx, f)
			var se *parser.SyntaxError
			switch {
			case errors.As(err, &se):
				l.logger.Warn("failed to parse file", slog.String("path", f.Rel), slog.String("error", se.Error()))
				results[i] = lintFileResult{Path: f.Rel, Err: err}
			case errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission):
				results[i] = lintFileResult{Path: f.Rel, Err: err}
			case err != nil:
				return err
			default:
				results[i] = lintFileResult{Path: f.Rel, Diagnostics: diags}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

func (l *linter) lintFile(ctx context.Context, f discover.File) ([]lint.Diagnostic, error) {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Rel, err)
	}
	tree, err := parser.ParseContext(ctx, src, f.Rel, f.Dialect)
	if err != nil {
		return nil, err
	}
	if !l.analyzer.Accepts(tree.Representation()) {
		l.logger.Debug("no rules for representation",
			slog.String("path", f.Rel),
			slog.String("representation", tree.Representation()))
		return nil, nil
	}
	diags, err := l.analyzer.Analyze(tree)
	if err != nil {
		return nil, err
	}
	for i := range diags {
		diags[i].FilePath = f.Rel
	}
	return diags, nil
}

func (l *linter) loadBaseline(ctx context.Context) (map[string]int, error) {
	if _, err := os.Stat(l.cfg.BaselinePath); err != nil {
		return nil, fmt.Errorf("no baseline at %s, run 'msglint baseline create' first: %w", l.cfg.BaselinePath, err)
	}
	store := baseline.NewStore()
	if err := store.Open(l.cfg.BaselinePath); err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Counts(ctx)
}

func filterBySeverity(diags []lint.Diagnostic, threshold core.Severity) []lint.Diagnostic {
	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.Severity.AtLeast(threshold) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func summarize(report *lintReport) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed: report.Analyzed,
		FilesFailed:   len(report.Failed),
		Suppressed:    report.Suppressed,
	}
	for _, res := range report.Results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints the report and reports whether it holds findings
// or failed files.
func renderLintResults(r *output.Renderer, report *lintReport) bool {
	summary := summarize(report)
	hasIssues := summary.TotalIssues > 0 || summary.FilesFailed > 0

	switch r.EffectiveMode() {
	case output.ModeJSON:
		_ = r.JSON(lintJSON(report, summary))
		return hasIssues
	case output.ModeMarkdown:
		renderLintMarkdown(r, report, summary)
		return hasIssues
	}

	for _, res := range report.Failed {
		r.Error(res.Err.Error())
	}

	if !hasIssues {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return false
	}

	for _, res := range report.Results {
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", location(d))),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	r.Printf("Summary: %s\n", summaryLine(summary))
	return true
}

func renderLintMarkdown(r *output.Renderer, report *lintReport, summary output.LintSummary) {
	r.Println("# Lint Results")
	r.Println("")

	for _, res := range report.Results {
		r.Printf("## %s\n\n", res.Path)
		for _, d := range res.Diagnostics {
			r.Printf("- `%s` **%s** %s: %s\n", location(d), d.Severity.String(), d.RuleID, d.Message)
			if d.Highlight != "" {
				r.Printf("  - `%s`\n", strings.ReplaceAll(d.Highlight, "\n", " "))
			}
		}
		r.Println("")
	}

	if len(report.Failed) > 0 {
		r.Println("## Failed")
		r.Println("")
		for _, res := range report.Failed {
			r.Printf("- %s\n", res.Err.Error())
		}
		r.Println("")
	}

	r.Printf("**Summary:** %s\n", summaryLine(summary))
}

func lintJSON(report *lintReport, summary output.LintSummary) output.LintOutput {
	jsonOutput := output.LintOutput{
		Summary: summary,
		Files:   []output.LintFileResult{},
	}
	for _, res := range report.Results {
		fileResult := output.LintFileResult{Path: res.Path}
		for _, d := range res.Diagnostics {
			fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
				RuleID:           d.RuleID,
				Rule:             ruleName(d.RuleID),
				Severity:         d.Severity.String(),
				Message:          d.Message,
				Line:             d.Pos.Line,
				Column:           d.Pos.Column,
				EndLine:          d.EndPos.Line,
				EndColumn:        d.EndPos.Column,
				Highlight:        d.Highlight,
				DocumentationURL: d.DocumentationURL,
			})
		}
		jsonOutput.Files = append(jsonOutput.Files, fileResult)
	}
	for _, res := range report.Failed {
		jsonOutput.Failed = append(jsonOutput.Failed, output.LintFailure{Path: res.Path, Error: res.Err.Error()})
	}
	return jsonOutput
}

func summaryLine(summary output.LintSummary) string {
	parts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", summary.Hints))
	}
	line := fmt.Sprintf("%s in %d files", strings.Join(parts, ", "), summary.FilesAnalyzed)
	if summary.FilesFailed > 0 {
		line += fmt.Sprintf(", %d failed", summary.FilesFailed)
	}
	if summary.Suppressed > 0 {
		line += fmt.Sprintf(", %d suppressed by baseline", summary.Suppressed)
	}
	return line
}

func location(d lint.Diagnostic) string {
	if d.Pos.Line == 0 {
		return "-"
	}
	return d.Pos.String()
}

func ruleName(id string) string {
	if rule, ok := lint.GetRuleByID(id); ok {
		return rule.Name()
	}
	return ""
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
