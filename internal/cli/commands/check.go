package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/plaintext-labs/uniclean/internal/engine"
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format string // Output format: text, json
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Report what clean would change, without writing",
		Long: `Dry run over the inputs without writing anything.

For every file the command reports whether cleaning would rewrite it
and lists the characters the active table cannot map, with their
positions and surrounding context. Reads stdin when no files are
given.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Plain text
  - JSON: Machine-readable format`,
		Example: `  # Check files before committing
  uniclean check docs/notes.txt docs/draft.txt

  # Check a download without touching disk
  curl -s https://example.org/notes.txt | uniclean check

  # Machine-readable report
  uniclean check --format json notes.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var results []engine.FileResult
	if len(args) == 0 {
		res, err := eng.CleanStream(cmd.InOrStdin(), io.Discard)
		if err != nil {
			return err
		}
		results = []engine.FileResult{{
			Path:     "<stdin>",
			Changed:  res.Changed,
			Warnings: res.Warnings,
		}}
	} else {
		results = eng.CleanAll(args, true)
	}

	return renderCheckResults(r, results)
}

// renderCheckResults reports the dry run and returns a non-nil error
// when anything needs attention.
func renderCheckResults(r *output.Renderer, results []engine.FileResult) error {
	out := buildCleanOutput(results)
	s := out.Summary

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
		if s.Errors > 0 || s.Changed > 0 || s.Unmapped > 0 {
			return errors.New("unclean input found")
		}
		return nil
	}

	for _, res := range results {
		if res.Err == nil && !res.Changed && len(res.Warnings) == 0 {
			continue
		}

		r.Println(r.Styles().FilePath.Render(res.Path))
		switch {
		case res.Err != nil:
			r.Printf("  %s\n", r.Styles().Error.Render(res.Err.Error()))
		case len(res.Warnings) == 0:
			r.Printf("  %s\n", r.Styles().Muted.Render("would rewrite"))
		}
		for _, w := range res.Warnings {
			loc := fmt.Sprintf("%d:%d", w.Pos.Line, w.Pos.Column)
			r.Printf("  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				r.Styles().Warning.Render(w.Placeholder()),
				r.Styles().Muted.Render(w.Context),
			)
		}
		r.Println("")
	}

	if s.Errors == 0 && s.Changed == 0 && s.Unmapped == 0 {
		r.Success("All input is clean")
		return nil
	}

	// Print summary
	var summaryParts []string
	if s.Changed > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d would change", s.Changed))
	}
	if s.Unmapped > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d unmapped characters", s.Unmapped))
	}
	if s.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", s.Errors))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), s.Files)

	return errors.New("unclean input found")
}
