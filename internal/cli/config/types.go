// Package config provides configuration management for the msglint CLI.
//
// The shared lint configuration type lives in pkg/core and is re-exported
// here via a type alias for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/msglint/internal/config"
	"github.com/leapstack-labs/msglint/pkg/core"
)

// LintConfig is an alias for the shared lint configuration.
// This allows CLI code to use config.LintConfig without importing pkg/core.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	ProjectRoot  string      `koanf:"-"`
	Include      []string    `koanf:"include"`       // glob patterns a file must match, empty matches all
	Exclude      []string    `koanf:"exclude"`       // glob patterns that are never linted
	Dialect      string      `koanf:"dialect"`       // force a dialect instead of inferring it from the extension
	OutputFormat string      `koanf:"output"`        // auto, text, markdown, json
	Verbose      bool        `koanf:"verbose"`       // debug logging on stderr
	Jobs         int         `koanf:"jobs"`          // files linted in parallel, 0 means one per CPU
	BaselinePath string      `koanf:"baseline_path"` // SQLite file of accepted findings
	DocsURL      string      `koanf:"docs_url"`      // base URL of rule documentation
	Lint         *LintConfig `koanf:"lint"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultBaselinePath = sharedcfg.DefaultBaselinePath
	DefaultOutput       = sharedcfg.DefaultOutput
)
