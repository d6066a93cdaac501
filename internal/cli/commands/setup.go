package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/msglint/internal/cli/config"
	"github.com/leapstack-labs/msglint/internal/cli/output"
	intconfig "github.com/leapstack-labs/msglint/internal/config"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	name := cfg.OutputFormat
	if format != "" {
		name = format
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(name))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults when no
// configuration was loaded (commands run directly in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		ProjectRoot:  ".",
		Exclude:      intconfig.DefaultExcludeCopy(),
		OutputFormat: config.DefaultOutput,
		BaselinePath: config.DefaultBaselinePath,
	}
}
