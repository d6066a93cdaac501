package lint

import (
	"log/slog"

	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/format"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// =============================================================================
// Rule Interfaces
// =============================================================================

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "RM01"
	ID() string

	// Name returns the human-readable name, e.g., "no-broken-messages"
	Name() string

	// Group returns the category, e.g., "messages"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Representation returns the tree representation the rule consumes
	Representation() string

	// Link returns the URL of the rule documentation
	Link() string

	// Documentation methods for richer rule documentation
	Rationale() string   // Why this rule exists, what problems it prevents
	BadExample() string  // Code showing the anti-pattern
	GoodExample() string // Code showing the correct pattern
	Fix() string         // How to fix violations (when not obvious)
}

// TreeRule analyzes a whole parsed source file.
type TreeRule interface {
	Rule

	// CheckTree analyzes a tree and returns diagnostics in reporting order.
	// The opts parameter contains rule-specific options from configuration.
	// An error means the rule could not run at all; findings are never errors.
	CheckTree(ctx *TreeContext, opts map[string]any) ([]Diagnostic, error)
}

// TreeContext carries a tree and the services a tree rule may use.
type TreeContext struct {
	Tree     *parser.Tree
	Renderer format.Renderer
	Logger   *slog.Logger
}

// NewTreeContext returns a context for tree with the default renderer and a
// discarding logger.
func NewTreeContext(tree *parser.Tree) *TreeContext {
	return &TreeContext{
		Tree:     tree,
		Renderer: format.Default,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Render renders n with the configured renderer.
func (c *TreeContext) Render(n *parser.Node) string {
	r := c.Renderer
	if r == nil {
		r = format.Default
	}
	return r.Render(n, c.Tree.Source)
}

// Log returns the configured logger, or a discarding one.
func (c *TreeContext) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	return core.RuleInfo{
		ID:               r.ID(),
		Name:             r.Name(),
		Group:            r.Group(),
		Description:      r.Description(),
		DefaultSeverity:  r.DefaultSeverity(),
		ConfigKeys:       r.ConfigKeys(),
		Representation:   r.Representation(),
		DocumentationURL: r.Link(),
		Rationale:        r.Rationale(),
		BadExample:       r.BadExample(),
		GoodExample:      r.GoodExample(),
		Fix:              r.Fix(),
	}
}
