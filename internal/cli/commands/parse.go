package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/msglint/internal/cli/output"
	"github.com/leapstack-labs/msglint/pkg/dialect"
	"github.com/leapstack-labs/msglint/pkg/parser"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Format string // Output format
	Markup bool   // Print markup nodes only
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its syntax tree",
		Long: `Parse a source file and print the normalized syntax tree that lint
rules see. Syntax errors are reported with their line and column.

Lines are 1-based and columns are 0-based UTF-16 code units.`,
		Example: `  # Print the tree of a component
  msglint parse src/App.jsx

  # Only elements, fragments and their markup children
  msglint parse --markup src/App.jsx

  # Machine-readable tree
  msglint parse --format json src/App.tsx

  # Parse a .js file as plain script
  msglint parse --dialect js src/legacy.js`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Markup, "markup", false, "Print markup nodes only")

	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *ParseOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	// The global --dialect flag overrides extension inference.
	name := cmdCtx.Cfg.Dialect

	var d *dialect.Dialect
	if name != "" {
		var err error
		if d, err = dialect.Lookup(name); err != nil {
			return err
		}
	} else {
		var ok bool
		if d, ok = dialect.ForExtension(filepath.Ext(path)); !ok {
			return fmt.Errorf("%w: %s", parser.ErrNoDialect, path)
		}
	}

	src, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	tree, err := parser.ParseContext(cmd.Context(), src, path, d)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("parsed", "path", path, "dialect", d.Name)

	root := toTreeNode(tree, tree.Root, opts.Markup)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.ParseOutput{Path: path, Dialect: d.Name, Root: root})
	case output.ModeMarkdown:
		r.Printf("# %s (%s)\n\n", path, d.Name)
		r.Println("```")
		printTreeNode(r, root, 0, false)
		r.Println("```")
	default:
		r.Println(r.Styles().FilePath.Render(path) + " " + r.Styles().Muted.Render("("+d.Name+")"))
		printTreeNode(r, root, 0, true)
	}
	return nil
}

// toTreeNode converts n for output. With markupOnly, script nodes are kept
// only as far as they lead to markup.
func toTreeNode(tree *parser.Tree, n *parser.Node, markupOnly bool) *output.TreeNode {
	if n == nil {
		return nil
	}

	tn := &output.TreeNode{
		Kind:             n.Kind.String(),
		Type:             n.Type,
		Name:             n.Name,
		NameIsIdentifier: n.NameIsIdentifier,
		SelfClosing:      n.SelfClosing,
		Start:            n.Span.Start.String(),
		End:              n.Span.End.String(),
	}
	if n.Kind == parser.KindText {
		tn.Text = tree.Text(n.Span)
	}

	for _, a := range n.Attributes {
		tn.Attributes = append(tn.Attributes, toTreeNode(tree, a, false))
	}
	for _, c := range n.Children {
		tn.Children = append(tn.Children, toTreeNode(tree, c, markupOnly))
	}
	for _, s := range n.Nodes {
		child := toTreeNode(tree, s, markupOnly)
		if markupOnly && !containsMarkup(s) {
			continue
		}
		tn.Nodes = append(tn.Nodes, child)
	}
	return tn
}

func containsMarkup(n *parser.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == parser.KindElement || n.Kind == parser.KindFragment {
		return true
	}
	for _, s := range n.Nodes {
		if containsMarkup(s) {
			return true
		}
	}
	return false
}

func printTreeNode(r *output.Renderer, n *output.TreeNode, depth int, styled bool) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)

	label := n.Kind
	if n.Name != "" {
		label += " " + n.Name
	}
	if n.SelfClosing {
		label += " /"
	}
	loc := fmt.Sprintf("[%s-%s]", n.Start, n.End)
	detail := ""
	if n.Text != "" {
		detail = " " + fmt.Sprintf("%q", n.Text)
	}
	if styled {
		r.Printf("%s%s %s%s\n", indent, r.Styles().Bold.Render(label), r.Styles().Muted.Render(loc), detail)
	} else {
		r.Printf("%s%s %s%s\n", indent, label, loc, detail)
	}

	for _, a := range n.Attributes {
		printTreeNode(r, a, depth+1, styled)
	}
	for _, c := range n.Children {
		printTreeNode(r, c, depth+1, styled)
	}
	for _, s := range n.Nodes {
		printTreeNode(r, s, depth+1, styled)
	}
}
