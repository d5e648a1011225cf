package commands

import (
	"log/slog"
	"os"

	"github.com/plaintext-labs/uniclean/internal/cli/config"
	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/plaintext-labs/uniclean/internal/engine"
	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	eng, err := createEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Renderer: r,
	}, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
// Useful for commands that build their own translator or need none at all.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	mode := getEnvOrDefault("UNICLEAN_MODE", config.DefaultMode)
	outputFormat := getEnvOrDefault("UNICLEAN_OUTPUT", config.DefaultOutput)
	normalize := os.Getenv("UNICLEAN_NORMALIZE") == "true"
	decompose := os.Getenv("UNICLEAN_DECOMPOSE") == "true"
	verbose := os.Getenv("UNICLEAN_VERBOSE") == "true"
	stdout := os.Getenv("UNICLEAN_STDOUT") == "true"

	return &config.Config{
		Mode:         charmap.Mode(mode),
		Normalize:    normalize,
		Decompose:    decompose,
		Verbose:      verbose,
		OutputFormat: outputFormat,
		Stdout:       stdout,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func createEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	tbl, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	engineCfg := engine.Config{
		Table:     tbl,
		Normalize: cfg.Normalize,
		Decompose: cfg.Decompose,
		Logger:    logger,
	}

	return engine.New(engineCfg)
}
