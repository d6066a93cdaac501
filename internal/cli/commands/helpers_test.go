package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/msglint/internal/cli/config"
	"github.com/leapstack-labs/msglint/internal/cli/testutil"

	_ "github.com/leapstack-labs/msglint/pkg/dialects/all"
)

// setupProject creates a test project, loads its config and makes it the
// working directory.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(filepath.Join(dir, "msglint.yaml"), nil)
	require.NoError(t, err)
	return dir
}

// execute runs cmd with args and returns stdout and stderr. Usage and error
// printing are silenced the way the root command does it.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
