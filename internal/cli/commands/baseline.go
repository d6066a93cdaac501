package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/msglint/internal/baseline"
	"github.com/leapstack-labs/msglint/internal/cli/output"
	"github.com/leapstack-labs/msglint/pkg/core"
)

// BaselineOptions holds options for the baseline commands.
type BaselineOptions struct {
	Format  string
	Disable []string
	Rules   []string
}

// NewBaselineCommand creates the baseline command and its subcommands.
func NewBaselineCommand() *cobra.Command {
	opts := &BaselineOptions{}
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage accepted findings",
		Long: `A baseline records the findings a project has accepted. 'msglint lint
--baseline' then reports only findings that are not in it.

Findings are matched by rule, file, message and highlighted code, so moving
code within a file does not invalidate the baseline.`,
		Example: `  # Accept every current finding
  msglint baseline create

  # List accepted findings
  msglint baseline show

  # Lint, reporting new findings only
  msglint lint --baseline`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	create := &cobra.Command{
		Use:   "create [paths...]",
		Short: "Record current findings as accepted",
		Long:  `Lint the project and replace the baseline with every finding reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBaselineCreate(cmd, args, opts)
		},
	}
	create.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	create.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	show := &cobra.Command{
		Use:   "show",
		Short: "List accepted findings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBaselineShow(cmd, opts)
		},
	}

	cmd.AddCommand(create, show)
	return cmd
}

func runBaselineCreate(cmd *cobra.Command, paths []string, opts *BaselineOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	lintOpts := &LintOptions{Paths: paths, Disable: opts.Disable, Rules: opts.Rules}
	lintCfg, err := buildLintConfig(cfg, lintOpts)
	if err != nil {
		return err
	}
	l := &linter{
		cfg:       cfg,
		opts:      lintOpts,
		analyzer:  newAnalyzer(lintCfg, cmdCtx),
		threshold: core.SeverityHint,
		logger:    cmdCtx.Logger,
	}

	report, err := l.run(cmd.Context())
	if err != nil {
		return err
	}
	for _, res := range report.Failed {
		r.Warning(res.Err.Error())
	}

	var entries []baseline.Entry
	for _, res := range report.Results {
		for _, d := range res.Diagnostics {
			entries = append(entries, baseline.NewEntry(res.Path, d))
		}
	}

	store := baseline.NewStore()
	if err := store.Open(cfg.BaselinePath); err != nil {
		return err
	}
	defer store.Close()

	if err := store.Replace(cmd.Context(), entries); err != nil {
		return err
	}

	cmdCtx.Logger.Debug("baseline written", "path", cfg.BaselinePath, "entries", len(entries))
	r.Success(fmt.Sprintf("Baseline created with %d findings in %s", len(entries), cfg.BaselinePath))
	return nil
}

// BaselineJSONOutput is the JSON output of 'baseline show'.
type BaselineJSONOutput struct {
	Path    string          `json:"path"`
	Entries []BaselineEntry `json:"entries"`
	Total   int             `json:"total"`
}

// BaselineEntry is one accepted finding in JSON output.
type BaselineEntry struct {
	RuleID      string    `json:"rule_id"`
	Path        string    `json:"path"`
	Message     string    `json:"message"`
	Highlight   string    `json:"highlight,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}

func runBaselineShow(cmd *cobra.Command, opts *BaselineOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if _, err := os.Stat(cfg.BaselinePath); err != nil {
		return fmt.Errorf("no baseline at %s, run 'msglint baseline create' first: %w", cfg.BaselinePath, err)
	}

	store := baseline.NewStore()
	if err := store.Open(cfg.BaselinePath); err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		out := BaselineJSONOutput{Path: cfg.BaselinePath, Entries: []BaselineEntry{}, Total: len(entries)}
		for _, e := range entries {
			out.Entries = append(out.Entries, BaselineEntry{
				RuleID:      e.RuleID,
				Path:        e.Path,
				Message:     e.Message,
				Highlight:   e.Highlight,
				Fingerprint: e.Fingerprint,
				CreatedAt:   e.CreatedAt,
			})
		}
		return r.JSON(out)
	case output.ModeMarkdown:
		r.Printf("# Baseline (%d findings)\n\n", len(entries))
		if len(entries) > 0 {
			r.Println(baselineTable(entries).RenderMarkdown())
		}
		return nil
	default:
		if len(entries) == 0 {
			r.Success("Baseline is empty")
			return nil
		}
		t := baselineTable(entries)
		t.SetStyle(table.StyleLight)
		r.Println(t.Render())
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("%d accepted findings in %s", len(entries), cfg.BaselinePath)))
		return nil
	}
}

func baselineTable(entries []baseline.Entry) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Path", "Rule", "Message", "Fingerprint"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Path, e.RuleID, e.Message, e.Fingerprint[:12]})
	}
	return t
}
