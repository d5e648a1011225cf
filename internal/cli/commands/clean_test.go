package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plaintext-labs/uniclean/internal/cli/config"
	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/plaintext-labs/uniclean/internal/cli/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs cmd with captured streams and a clean config
// state, so the environment fallback decides the configuration.
func executeCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCleanStdin(t *testing.T) {
	stdout, stderr, err := executeCommand(t, NewCleanCommand(), "café — ok\n")
	require.NoError(t, err)
	assert.Equal(t, "cafe - ok\n", stdout)
	assert.Empty(t, stderr)
}

func TestCleanStdinLaTeXFromEnv(t *testing.T) {
	t.Setenv("UNICLEAN_MODE", "latex")

	stdout, _, err := executeCommand(t, NewCleanCommand(), "café\n")
	require.NoError(t, err)
	assert.Equal(t, `caf{\'{e}}`+"\n", stdout)
}

func TestCleanRewritesFilesInPlace(t *testing.T) {
	_, dirty, clean := testutil.SetupTestFiles(t)

	_, stderr, err := executeCommand(t, NewCleanCommand(), "", dirty, clean)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(dirty)
	require.NoError(t, err)
	assert.Equal(t, "cafe - \"quoted\"\n", string(data))

	data, err = os.ReadFile(clean)
	require.NoError(t, err)
	assert.Equal(t, "plain ascii\n", string(data))
}

func TestCleanUnmappedReportsAndFails(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "snow.txt", "snow ☃ day\n")

	_, stderr, err := executeCommand(t, NewCleanCommand(), "", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be mapped")
	assert.Contains(t, stderr, path+":1:6: unknown Unicode \\N{SNOWMAN}")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "snow \\N{SNOWMAN} day\n", string(data))
}

func TestCleanContinuesPastMissingFile(t *testing.T) {
	_, dirty, _ := testutil.SetupTestFiles(t)
	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, stderr, err := executeCommand(t, NewCleanCommand(), "", missing, dirty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files")
	assert.Contains(t, stderr, "nope.txt")

	data, err := os.ReadFile(dirty)
	require.NoError(t, err)
	assert.Equal(t, "cafe - \"quoted\"\n", string(data), "remaining files must still be cleaned")
}

func TestCleanStdoutLeavesFilesAlone(t *testing.T) {
	t.Setenv("UNICLEAN_STDOUT", "true")
	_, dirty, _ := testutil.SetupTestFiles(t)

	stdout, _, err := executeCommand(t, NewCleanCommand(), "", dirty)
	require.NoError(t, err)
	assert.Equal(t, "cafe - \"quoted\"\n", stdout)

	data, err := os.ReadFile(dirty)
	require.NoError(t, err)
	assert.Equal(t, "café — “quoted”\n", string(data))
}

func TestCleanJSONOutput(t *testing.T) {
	t.Setenv("UNICLEAN_OUTPUT", "json")
	_, dirty, clean := testutil.SetupTestFiles(t)

	stdout, _, err := executeCommand(t, NewCleanCommand(), "", dirty, clean)
	require.NoError(t, err)

	var out output.CleanOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 2, out.Summary.Files)
	assert.Equal(t, 1, out.Summary.Changed)
	assert.Equal(t, 1, out.Summary.Written)
	assert.Equal(t, 0, out.Summary.Unmapped)
	require.Len(t, out.Files, 2)
	assert.True(t, out.Files[0].Written)
	assert.False(t, out.Files[1].Changed)
}
