// Package config holds project-level configuration defaults and config file
// lookup shared by the CLI and the file discovery.
package config

// Default configuration values.
const (
	DefaultBaselinePath = ".msglint/baseline.db"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DefaultExclude lists glob patterns that are never linted.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/coverage/**",
	"**/*.min.js",
}

// DefaultExcludeCopy returns a copy of DefaultExclude safe to modify.
func DefaultExcludeCopy() []string {
	out := make([]string, len(DefaultExclude))
	copy(out, DefaultExclude)
	return out
}
