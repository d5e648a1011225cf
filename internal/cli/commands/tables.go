package commands

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/plaintext-labs/uniclean/internal/cli/output"
	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/plaintext-labs/uniclean/pkg/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// TablesOptions holds options for the tables command.
type TablesOptions struct {
	Format string // Output format: text, json, yaml
}

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	opts := &TablesOptions{}
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show the active substitution table",
		Long: `Print the substitution table for the active mode, including any
mappings from the config file.

The yaml format emits the table in the config file's mappings syntax,
so it can be pasted into uniclean.yaml and tweaked from there.`,
		Example: `  # Active table (ascii unless configured otherwise)
  uniclean tables

  # LaTeX table as YAML, ready for uniclean.yaml
  uniclean tables --latex --format yaml

  # JSON for scripts
  uniclean tables --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, yaml")

	return cmd
}

func runTables(cmd *cobra.Command, opts *TablesOptions) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	tbl, err := cmdCtx.Cfg.Table()
	if err != nil {
		return err
	}

	switch opts.Format {
	case "json":
		return tablesJSON(r, tbl)
	case "yaml":
		return tablesYAML(r, tbl)
	case "text":
		return tablesText(r, tbl)
	case "":
		if r.EffectiveMode() == output.ModeJSON {
			return tablesJSON(r, tbl)
		}
		return tablesText(r, tbl)
	default:
		return fmt.Errorf("unknown format %q (valid: text, json, yaml)", opts.Format)
	}
}

// tablesText renders the table for humans.
func tablesText(r *output.Renderer, tbl *charmap.Table) error {
	r.Printf("Mode: %s\n", tbl.Mode())

	if tbl.Len() == 0 {
		r.Println("No table entries; non-ASCII characters become numeric character references.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Char", "Name", "Replacement"})

	for _, rn := range tbl.Runes() {
		repl, _ := tbl.Lookup(rn)
		t.AppendRow(table.Row{
			fmt.Sprintf("U+%04X", rn),
			strconv.QuoteRune(rn),
			translate.NameOf(rn),
			repl,
		})
	}

	t.Render()
	r.Printf("(%d entries)\n", tbl.Len())
	return nil
}

func tablesJSON(r *output.Renderer, tbl *charmap.Table) error {
	out := output.TableOutput{
		Mode:     string(tbl.Mode()),
		Fallback: string(tbl.Fallback()),
	}

	for _, rn := range tbl.Runes() {
		repl, _ := tbl.Lookup(rn)
		out.Entries = append(out.Entries, output.TableEntry{
			Code:        fmt.Sprintf("U+%04X", rn),
			Char:        string(rn),
			Name:        translate.NameOf(rn),
			Replacement: repl,
		})
	}

	return r.JSON(out)
}

// tablesYAML emits the table in the config file's mappings syntax.
func tablesYAML(r *output.Renderer, tbl *charmap.Table) error {
	entries := make(map[string]string, tbl.Len())
	for _, rn := range tbl.Runes() {
		repl, _ := tbl.Lookup(rn)
		entries[fmt.Sprintf("U+%04X", rn)] = repl
	}

	doc := map[string]map[string]map[string]string{
		"mappings": {string(tbl.Mode()): entries},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.Out().Write(data)
	return err
}
