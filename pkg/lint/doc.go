// Package lint provides the rule framework for linting parsed source files.
//
// # Architecture
//
// The lint package follows a modular architecture:
//
//  1. Root package (pkg/lint/): shared contracts, interfaces, configuration and the registry
//  2. Markup subsystem (pkg/lint/markup/): rules over markup-ast trees and their analyzer
//  3. Rules (pkg/lint/markup/rules/): one file per rule, registered from init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/msglint/pkg/lint/markup/rules"
//
// # Rule Categories
//
// Markup Rules:
//   - RM (Messages): Rules about how translatable messages are split and nested
//
// # Using the Registry
//
//	rules := lint.AllRules()
//	rule, ok := lint.GetRuleByID("RM01")
//	markupRules := lint.GetTreeRulesByRepresentation(dialect.RepresentationMarkup)
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("RM01")
//	config.SetSeverity("RM01", core.SeverityWarning)
//	config.SetRuleOptions("RM01", map[string]any{"threshold": 4})
//
// Rule options are decoded into typed structs with DecodeOptions.
package lint
