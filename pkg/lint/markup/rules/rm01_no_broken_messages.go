package rules

import (
	"strings"

	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/format"
	"github.com/leapstack-labs/msglint/pkg/lint"
	"github.com/leapstack-labs/msglint/pkg/lint/markup"
	"github.com/leapstack-labs/msglint/pkg/lint/markup/internal/ast"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

func init() {
	markup.Register(NoBrokenMessages)
}

// Finding messages.
const (
	MsgSeparatedPlaceholders = "Found FormattedMessage components separated by non-breaking components. " +
		"This indicates a broken string. Use one string with rich-text-formatting instead."
	MsgNestedPlaceholder = "Found a FormattedMessage component inside of another FormattedMessage component. " +
		"This indicates a broken string."
	MsgTranslationCall = "Found a call to intl.formatMessage() inside of a FormattedMessage component. " +
		"This indicates a broken string."
)

const (
	ruleID                     = "RM01"
	defaultThreshold           = 3
	defaultTranslationFunction = "intl.formatMessage"
	defaultDescriptorObject    = "messages"
)

// NoBrokenMessages flags translatable strings that were split into pieces.
var NoBrokenMessages = markup.RuleDef{
	ID:          ruleID,
	Name:        "no-broken-messages",
	Group:       "messages",
	Description: "Check for FormattedMessage instances separated by non-breaking components",
	Severity:    core.SeverityError,
	ConfigKeys:  []string{"threshold", "placeholders", "translation_functions", "descriptor_objects", "non_breaking_tags"},
	Check:       checkNoBrokenMessages,

	Rationale: `Translators see every FormattedMessage as a separate string. When one sentence
is split into several messages around inline markup, or a message is passed into
another message, each piece is translated without the rest of the sentence and
the word order of the target language cannot be honored.`,

	BadExample: `<div>
  <FormattedMessage id="a" defaultMessage="Read the" />
  <a href="/terms"><FormattedMessage id="b" defaultMessage="terms" /></a>
  <FormattedMessage id="c" defaultMessage="before you sign up." />
</div>`,

	GoodExample: `<FormattedMessage
  id="signup"
  defaultMessage="Read the <a>terms</a> before you sign up."
  values={{ a: chunks => <a href="/terms">{chunks}</a> }}
/>`,

	Fix: "Merge the pieces into one message and use rich-text formatting for the inline markup.",
}

// Options configures NoBrokenMessages.
type Options struct {
	// Threshold is the run length a children list must exceed to be checked.
	Threshold int `mapstructure:"threshold"`
	// Placeholders are the component names that render a message.
	Placeholders []string `mapstructure:"placeholders"`
	// TranslationFunctions are callees that translate a message at runtime.
	// A call matches when its callee equals a name or ends with "." + name.
	TranslationFunctions []string `mapstructure:"translation_functions"`
	// DescriptorObjects are objects holding message descriptors. An element
	// spreading one of them, as in <Msg {...messages.x} />, is a placeholder
	// for the nesting check. An empty list turns the match off.
	DescriptorObjects []string `mapstructure:"descriptor_objects"`
	// NonBreakingTags are extra element names that continue a run.
	NonBreakingTags []string `mapstructure:"non_breaking_tags"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Threshold:            defaultThreshold,
		Placeholders:         []string{DefaultPlaceholder},
		TranslationFunctions: []string{defaultTranslationFunction},
		DescriptorObjects:    []string{defaultDescriptorObject},
	}
}

// ParseOptions decodes rule options over the defaults.
func ParseOptions(opts map[string]any) (Options, error) {
	var o Options
	o.Threshold = defaultThreshold
	if err := lint.DecodeOptions(opts, &o); err != nil {
		return Options{}, err
	}
	def := DefaultOptions()
	if o.Placeholders == nil {
		o.Placeholders = def.Placeholders
	}
	if o.TranslationFunctions == nil {
		o.TranslationFunctions = def.TranslationFunctions
	}
	if o.DescriptorObjects == nil {
		o.DescriptorObjects = def.DescriptorObjects
	}
	return o, nil
}

func checkNoBrokenMessages(ctx *lint.TreeContext, opts map[string]any) ([]lint.Diagnostic, error) {
	o, err := ParseOptions(opts)
	if err != nil {
		return nil, &lint.OptionsError{RuleID: ruleID, Err: err}
	}

	c := &messageChecker{
		ctx:     ctx,
		opts:    o,
		classes: NewClassifier(o.Placeholders, o.NonBreakingTags),
	}
	root := ctx.Tree.Root
	if c.hasPlaceholder(root) {
		c.checkNested(root)
		c.checkSeparated(root)
	}

	ctx.Log().Debug("checked messages",
		"rule", ruleID,
		"path", ctx.Tree.Path,
		"findings", len(c.diags))
	return c.diags, nil
}

type messageChecker struct {
	ctx     *lint.TreeContext
	opts    Options
	classes *Classifier
	diags   []lint.Diagnostic
}

func (c *messageChecker) report(n *parser.Node, msg string) {
	c.diags = append(c.diags, lint.Diagnostic{
		RuleID:      ruleID,
		Severity:    core.SeverityError,
		Message:     msg,
		Pos:         n.Span.Start,
		EndPos:      n.Span.End,
		Highlight:   format.Highlight(c.ctx.Render(n)),
		ImpactScore: lint.ImpactHigh.Int(),
	})
}

// hasPlaceholder reports whether any placeholder occurs under root. Files
// without one have nothing to break.
func (c *messageChecker) hasPlaceholder(root *parser.Node) bool {
	found := false
	ast.Walk(root, func(n *parser.Node) bool {
		if found {
			return false
		}
		found = c.isNestingPlaceholder(n)
		return !found
	})
	return found
}

// checkNested reports placeholders and translation calls inside the payload
// of another placeholder.
func (c *messageChecker) checkNested(root *parser.Node) {
	ast.Walk(root, func(n *parser.Node) bool {
		if !c.isNestingPlaceholder(n) {
			return true
		}
		ast.WalkPayload(n, func(inner *parser.Node) bool {
			switch {
			case c.isNestingPlaceholder(inner):
				c.report(inner, MsgNestedPlaceholder)
				return false
			case inner.Kind == parser.KindCallExpression && c.isTranslationCall(inner.Name):
				c.report(inner, MsgTranslationCall)
				return false
			}
			return true
		})
		return true
	})
}

// checkSeparated reports every run of non-breaking children that splits a
// string, one finding per run located at the parent. Children lists nested
// inside a reported run belong to that run and are not checked again.
func (c *messageChecker) checkSeparated(root *parser.Node) {
	covered := make(map[*parser.Node]bool)
	for _, n := range ast.CollectChildLists(root) {
		if covered[n] {
			continue
		}

		var run []*parser.Node
		evaluate := func() {
			if len(run) > c.opts.Threshold && c.classes.IsBrokenString(run) {
				c.report(n, MsgSeparatedPlaceholders)
				for _, member := range run {
					ast.Walk(member, func(d *parser.Node) bool {
						covered[d] = true
						return true
					})
				}
			}
			run = run[:0]
		}
		for _, child := range n.Children {
			if c.classes.IsBreaking(child) {
				evaluate()
				continue
			}
			run = append(run, child)
		}
		evaluate()
	}
}

func (c *messageChecker) isNestingPlaceholder(n *parser.Node) bool {
	if c.classes.IsPlaceholder(n) {
		return true
	}
	if n.Kind != parser.KindElement || len(c.opts.DescriptorObjects) == 0 {
		return false
	}
	for _, attr := range n.Attributes {
		if attr.Kind != parser.KindSpreadAttribute || attr.Value == nil {
			continue
		}
		ref := stripSpace(c.ctx.Tree.Text(attr.Value.Span))
		for _, obj := range c.opts.DescriptorObjects {
			if ref == obj || strings.HasPrefix(ref, obj+".") {
				return true
			}
		}
	}
	return false
}

func (c *messageChecker) isTranslationCall(callee string) bool {
	for _, fn := range c.opts.TranslationFunctions {
		if callee == fn || strings.HasSuffix(callee, "."+fn) {
			return true
		}
	}
	return false
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
