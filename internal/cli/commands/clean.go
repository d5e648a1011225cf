package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/plaintext-labs/uniclean/internal/engine"
	"github.com/plaintext-labs/uniclean/pkg/translate"
	"github.com/spf13/cobra"
)

// NewCleanCommand creates the clean command. The root command runs the
// same operation, so `uniclean notes.txt` and `uniclean clean notes.txt`
// are equivalent.
func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [file ...]",
		Short: "Substitute non-ASCII characters in files or stdin",
		Long: `Translate each file and rewrite it in place. Files whose content is
already clean are left untouched, and file permissions are preserved.
With no file arguments stdin is translated to stdout.

Every character the active table cannot map is replaced by a
\N{UNICODE NAME} placeholder and reported on stderr; the run then
exits non-zero so scripts can catch it.`,
		Example: `  # Rewrite files in place
  uniclean clean notes.txt chapter1.tex

  # Filter stdin to stdout
  curl -s https://example.org/feed.txt | uniclean clean

  # LaTeX markup instead of plain ASCII
  uniclean clean --latex thesis.txt

  # Print results to stdout without touching the files
  uniclean clean --stdout notes.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: RunClean,
	}

	return cmd
}

// RunClean implements the clean operation for both the root command and
// the explicit clean subcommand.
func RunClean(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	eng := cmdCtx.Engine
	r := cmdCtx.Renderer

	// No file arguments: act as a stdin-to-stdout filter
	if len(args) == 0 {
		res, err := eng.CleanStream(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		printWarnings(r, "<stdin>", res.Warnings)
		if n := len(res.Warnings); n > 0 {
			return unmappedErr(n)
		}
		return nil
	}

	if cmdCtx.Cfg.Stdout {
		return cleanToStdout(cmd, cmdCtx, args)
	}

	results := eng.CleanAll(args, false)
	return reportCleanResults(r, results)
}

// cleanToStdout translates each file and writes the results to stdout,
// leaving the files untouched.
func cleanToStdout(cmd *cobra.Command, cmdCtx *CommandContext, args []string) error {
	r := cmdCtx.Renderer

	var failed, unmapped int
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			r.Errorf("%s: %v\n", path, err)
			failed++
			continue
		}
		res, err := cmdCtx.Engine.CleanStream(f, cmd.OutOrStdout())
		_ = f.Close()
		if err != nil {
			r.Errorf("%s: %v\n", path, err)
			failed++
			continue
		}
		printWarnings(r, path, res.Warnings)
		unmapped += len(res.Warnings)
	}

	if failed > 0 {
		return fmt.Errorf("failed to clean %d of %d files", failed, len(args))
	}
	if unmapped > 0 {
		return unmappedErr(unmapped)
	}
	return nil
}

func reportCleanResults(r *output.Renderer, results []engine.FileResult) error {
	out := buildCleanOutput(results)

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(out); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Err != nil {
				r.Errorf("%s: %v\n", res.Path, res.Err)
				continue
			}
			printWarnings(r, res.Path, res.Warnings)
		}
	}

	if out.Summary.Errors > 0 {
		return fmt.Errorf("failed to clean %d of %d files", out.Summary.Errors, out.Summary.Files)
	}
	if out.Summary.Unmapped > 0 {
		return unmappedErr(out.Summary.Unmapped)
	}
	return nil
}

// printWarnings writes one diagnostic line per unmapped character, in
// document order.
func printWarnings(r *output.Renderer, source string, warns []translate.Warning) {
	for _, w := range warns {
		r.Warningf("%s:%s: unknown Unicode %s\n", source, w.Pos, w.Placeholder())
	}
}

// buildCleanOutput converts engine results into the JSON payload.
func buildCleanOutput(results []engine.FileResult) output.CleanOutput {
	out := output.CleanOutput{
		Summary: output.CleanSummary{Files: len(results)},
	}

	for _, res := range results {
		fr := output.CleanFileResult{
			Path:    res.Path,
			Changed: res.Changed,
			Written: res.Written,
		}
		if res.Err != nil {
			fr.Error = res.Err.Error()
			out.Summary.Errors++
		}
		if res.Changed {
			out.Summary.Changed++
		}
		if res.Written {
			out.Summary.Written++
		}
		for _, w := range res.Warnings {
			fr.Warnings = append(fr.Warnings, output.CleanWarning{
				Line:    w.Pos.Line,
				Column:  w.Pos.Column,
				Char:    string(w.Rune),
				Name:    w.Name,
				Context: w.Context,
			})
		}
		out.Summary.Unmapped += len(res.Warnings)
		out.Files = append(out.Files, fr)
	}

	return out
}

// unmappedErr is the non-zero exit for runs that hit unmapped
// characters. The per-character warnings were already printed.
func unmappedErr(n int) error {
	if n == 1 {
		return errors.New("1 character could not be mapped")
	}
	return fmt.Errorf("%d characters could not be mapped", n)
}
