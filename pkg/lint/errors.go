package lint

import "fmt"

// ConfigurationError reports a rule wired to a tree it cannot consume.
// It signals a bug in the caller, not a defect in the analyzed file.
type ConfigurationError struct {
	RuleID   string
	Expected string // representation the rule consumes
	Got      string // representation of the tree it was given
}

func (e *ConfigurationError) Error() string {
	got := e.Got
	if got == "" {
		got = "no representation"
	}
	return fmt.Sprintf("rule %s expects a %s tree, got %s", e.RuleID, e.Expected, got)
}

// OptionsError reports rule options that could not be decoded.
type OptionsError struct {
	RuleID string
	Err    error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid options for rule %s: %v", e.RuleID, e.Err)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}
