package markup

import (
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/lint"
)

// Representation is the tree representation every markup rule consumes.
const Representation = dialect.RepresentationMarkup

// RuleDef is a data-driven markup rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "RM01"
	Name        string        // Human-readable name, e.g., "no-broken-messages"
	Group       string        // Category, e.g., "messages"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)
	Link        string        // Documentation URL; derived from Name when empty

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a markup tree and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(ctx *lint.TreeContext, opts map[string]any) ([]lint.Diagnostic, error)

// wrappedRuleDef wraps a RuleDef to implement lint.TreeRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement lint.TreeRule.
func WrapRuleDef(def RuleDef) lint.TreeRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) Representation() string         { return Representation }

func (w *wrappedRuleDef) Link() string {
	if w.def.Link != "" {
		return w.def.Link
	}
	return lint.BuildDocURL(w.def.Name)
}

// Documentation methods
func (w *wrappedRuleDef) Rationale() string   { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string  { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string         { return w.def.Fix }

// CheckTree verifies the tree representation, runs the check and fills in
// the rule metadata of every diagnostic.
func (w *wrappedRuleDef) CheckTree(ctx *lint.TreeContext, opts map[string]any) ([]lint.Diagnostic, error) {
	got := ""
	if ctx != nil && ctx.Tree != nil {
		got = ctx.Tree.Representation()
	}
	if got != Representation {
		return nil, &lint.ConfigurationError{RuleID: w.def.ID, Expected: Representation, Got: got}
	}

	diags, err := w.def.Check(ctx, opts)
	if err != nil {
		return nil, err
	}
	for i := range diags {
		if diags[i].RuleID == "" {
			diags[i].RuleID = w.def.ID
		}
		if diags[i].Rule == nil {
			diags[i].Rule = w
		}
		if diags[i].FilePath == "" {
			diags[i].FilePath = ctx.Tree.Path
		}
		if diags[i].DocumentationURL == "" {
			diags[i].DocumentationURL = w.Link()
		}
	}
	return diags, nil
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}

// Register adds a rule to the registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	lint.RegisterTreeRule(WrapRuleDef(rule))
}
