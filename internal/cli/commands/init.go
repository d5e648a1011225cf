package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter uniclean.yaml",
		Long: `Write a starter uniclean.yaml into the target directory (default the
current directory). The file documents every setting and ships with
all mappings commented out, so it changes nothing until edited.`,
		Example: `  # Initialize in current directory
  uniclean init

  # Initialize in another directory
  uniclean init ~/notes

  # Force overwrite existing config
  uniclean init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			// Create renderer
			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, "uniclean.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("uniclean.yaml already exists. Use --force to overwrite")
	}

	if err := copyTemplate("starter", dir, force); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// List created files
	files, _ := listTemplateFiles("starter")
	for _, f := range files {
		r.Printf("  created %s\n", filepath.Join(dir, f))
	}

	r.Println("")
	r.Success("uniclean configured!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Pick a mode (ascii, latex, xml) in uniclean.yaml")
	r.Println("  2. Add mappings for characters your toolchain cares about")
	r.Println("  3. Run 'uniclean check <file>' to preview changes")

	return nil
}
