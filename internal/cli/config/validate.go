package config

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/msglint/internal/cli/output"
	"github.com/leapstack-labs/msglint/pkg/core"
	"github.com/leapstack-labs/msglint/pkg/dialect"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if c.Dialect != "" {
		if _, err := dialect.Lookup(c.Dialect); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				errs = append(errs, fmt.Errorf("lint.severity.%s: unknown severity %q", id, sev))
			}
		}
	}
	return errors.Join(errs...)
}
