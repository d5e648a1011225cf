package commands

import (
	"fmt"

	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display uniclean version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)
			r := cmdCtx.Renderer

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(output.VersionInfo{
					Version:   version,
					GitCommit: commit,
					BuildDate: date,
				})
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "uniclean v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Unicode to ASCII, LaTeX and XML text cleaner")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s, built %s\n", commit, date)
			return nil
		},
	}
}
