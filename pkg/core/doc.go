// Package core defines the data shared between the msglint library and its
// command line harness.
//
// This package contains:
//   - Severity levels and RuleInfo, the rule documentation DTO
//   - LintConfig and RuleOptions, the file-level lint configuration
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
