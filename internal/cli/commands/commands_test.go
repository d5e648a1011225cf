package commands

import (
	"testing"

	"github.com/plaintext-labs/uniclean/internal/cli/config"
	"github.com/plaintext-labs/uniclean/internal/testutil"
	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanCommand(t *testing.T) {
	cmd := NewCleanCommand()

	assert.Equal(t, "clean [file ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Note: mode and stdout flags are global persistent flags on root, not local
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [file ...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag %q should exist", "format")
}

func TestNewTablesCommand(t *testing.T) {
	cmd := NewTablesCommand()

	assert.Equal(t, "tables", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("format"), "flag %q should exist", "format")
}

func TestNewTryCommand(t *testing.T) {
	cmd := NewTryCommand()

	assert.Equal(t, "try", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestGetConfigEnvFallback(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Setenv("UNICLEAN_MODE", "latex")
	t.Setenv("UNICLEAN_VERBOSE", "true")

	cfg := getConfig()
	assert.Equal(t, charmap.ModeLaTeX, cfg.Mode)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
}

func TestCreateEngine(t *testing.T) {
	logger := testutil.NewTestLogger(t)

	t.Run("valid config", func(t *testing.T) {
		eng, err := createEngine(&config.Config{Mode: charmap.ModeASCII}, logger)
		require.NoError(t, err)
		require.NotNil(t, eng)
		assert.Equal(t, charmap.ModeASCII, eng.Table().Mode())
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := createEngine(&config.Config{Mode: "klingon"}, logger)
		assert.Error(t, err)
	})

	t.Run("invalid mapping key", func(t *testing.T) {
		cfg := &config.Config{
			Mode: charmap.ModeASCII,
			Mappings: map[string]map[string]string{
				"ascii": {"not-a-rune": "x"},
			},
		}
		_, err := createEngine(cfg, logger)
		assert.Error(t, err)
	})
}
