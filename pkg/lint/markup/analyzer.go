package markup

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/msglint/pkg/format"
	"github.com/leapstack-labs/msglint/pkg/lint"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// Analyzer runs markup lint rules against parsed trees.
type Analyzer struct {
	config   *lint.Config
	renderer format.Renderer
	logger   *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRenderer sets the renderer used for diagnostic highlights.
func WithRenderer(r format.Renderer) Option {
	return func(a *Analyzer) {
		a.renderer = r
	}
}

// WithLogger sets the logger handed to rules.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// NewAnalyzer creates a new markup analyzer with optional configuration.
func NewAnalyzer(config *lint.Config, opts ...Option) *Analyzer {
	if config == nil {
		config = lint.NewConfig()
	}
	a := &Analyzer{
		config:   config,
		renderer: format.Default,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name implements lint.Provider.
func (a *Analyzer) Name() string {
	return "markup"
}

// Accepts implements lint.TreeProvider.
func (a *Analyzer) Accepts(representation string) bool {
	return representation == Representation
}

// AnalyzeTree implements lint.TreeProvider.
func (a *Analyzer) AnalyzeTree(tree *parser.Tree) ([]lint.Diagnostic, error) {
	return a.Analyze(tree)
}

// Analyze runs all enabled markup rules against the tree, in rule ID order.
// A tree of another representation fails with *lint.ConfigurationError.
func (a *Analyzer) Analyze(tree *parser.Tree) ([]lint.Diagnostic, error) {
	if tree == nil {
		return nil, nil
	}

	ctx := &lint.TreeContext{
		Tree:     tree,
		Renderer: a.renderer,
		Logger:   a.logger,
	}

	var diagnostics []lint.Diagnostic
	for _, rule := range lint.GetTreeRulesByRepresentation(Representation) {
		// Skip disabled rules
		if a.config.IsDisabled(rule.ID()) {
			continue
		}

		// Get rule-specific options
		opts := a.config.GetRuleOptions(rule.ID())

		diags, err := rule.CheckTree(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", tree.Path, err)
		}

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID(), diags[i].Severity)
		}

		a.logger.Debug("rule evaluated",
			slog.String("rule", rule.ID()),
			slog.String("path", tree.Path),
			slog.Int("diagnostics", len(diags)))

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics, nil
}
