// Package rules contains all markup lint rules.
// Import this package to register all markup rules with the unified registry.
//
// Rules are automatically registered via init() functions when this package is imported:
//
//	import _ "github.com/leapstack-labs/msglint/pkg/lint/markup/rules"
//
// Rule Categories:
//   - RM (Messages): Rules about translatable messages in markup
package rules

// All rules are registered via init() functions in their respective files.
//
// Importing this package will register the following rules:
//
// Message rules:
//   - RM01: No Broken Messages - FormattedMessage instances must not be split
//     by other components or nested inside one another
