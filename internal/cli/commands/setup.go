// Package commands implements the solstyle subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/solstack-labs/solstyle/internal/cli/config"
	"github.com/solstack-labs/solstyle/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded
// configuration and the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
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

// getConfig returns the current configuration.
// Falls back to environment variables when config loading was skipped.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	contractsDir := os.Getenv("SOLSTYLE_CONTRACTS_DIR")
	if contractsDir == "" {
		contractsDir = config.DefaultContractsDir
	}
	outputFormat := os.Getenv("SOLSTYLE_OUTPUT")
	if outputFormat == "" {
		outputFormat = config.DefaultOutput
	}

	return &config.Config{
		ContractsDir: contractsDir,
		Verbose:      os.Getenv("SOLSTYLE_VERBOSE") == "true",
		OutputFormat: outputFormat,
	}
}
