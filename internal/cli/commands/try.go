package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/plaintext-labs/uniclean/internal/cli/config"
	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/plaintext-labs/uniclean/pkg/translate"
	"github.com/spf13/cobra"
)

// NewTryCommand creates the try command.
func NewTryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "try",
		Short: "Translate lines interactively",
		Long: `Interactive translator. Each line you type is translated with the
active mode and printed back; unmapped characters are reported below
the output. Switch modes on the fly with .mode.`,
		Example: `  # Start in the configured mode
  uniclean try

  # Start in LaTeX mode
  uniclean try --latex`,
		Args: cobra.NoArgs,
		RunE: runTry,
	}
}

// tryState carries the translator the REPL is currently using.
type tryState struct {
	cfg *config.Config
	tr  *translate.Translator
}

func (s *tryState) setMode(name string) error {
	mode, err := charmap.ParseMode(name)
	if err != nil {
		return err
	}

	clone := *s.cfg
	clone.Mode = mode
	tbl, err := clone.Table()
	if err != nil {
		return err
	}

	s.cfg = &clone
	s.tr = translate.New(tbl, translate.Options{
		Normalize: clone.Normalize,
		Decompose: clone.Decompose,
	})
	return nil
}

func runTry(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContextWithoutEngine(cmd)
	r := cmdCtx.Renderer

	tbl, err := cmdCtx.Cfg.Table()
	if err != nil {
		return err
	}
	st := &tryState{
		cfg: cmdCtx.Cfg,
		tr: translate.New(tbl, translate.Options{
			Normalize: cmdCtx.Cfg.Normalize,
			Decompose: cmdCtx.Cfg.Decompose,
		}),
	}

	// Setup history file in the home directory
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".uniclean_history")
	}

	// Configure readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "uniclean> ",
		HistoryFile:     historyFile,
		AutoComplete:    newTryCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	// Print welcome message
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "uniclean interactive translator (%s mode)\n", st.cfg.Mode)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	// REPL loop
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Handle dot-commands
		if strings.HasPrefix(line, ".") {
			if handled := handleTryCommand(cmd, st, line); handled {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		res := st.tr.Translate(line)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		for _, w := range res.Warnings {
			r.Warningf("unknown Unicode %s at column %d\n", w.Placeholder(), w.Pos.Column)
		}
	}

	return nil
}

func handleTryCommand(cmd *cobra.Command, st *tryState, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printTryHelp(cmd.OutOrStdout())
		return true

	case ".mode":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mode: %s\n", st.cfg.Mode)
			return true
		}
		if err := st.setMode(parts[1]); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return true
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mode: %s\n", st.cfg.Mode)
		return true

	case ".table":
		tbl := st.tr.Table()
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mode %s: %d entries, fallback %s\n",
			tbl.Mode(), tbl.Len(), tbl.Fallback())
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printTryHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .mode [name]    Show or switch the mode (ascii|latex|xml|html)
  .table          Show the size of the active table
  .clear          Clear the screen
  .quit / .exit   Exit

Tips:
  - Every line is translated and printed immediately
  - Unmapped characters are reported below the output
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

// newTryCompleter creates a readline completer for the dot-commands.
func newTryCompleter() *readline.PrefixCompleter {
	modes := make([]readline.PrefixCompleterInterface, 0, len(charmap.Modes()))
	for _, m := range charmap.Modes() {
		modes = append(modes, readline.PcItem(string(m)))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".mode", modes...),
		readline.PcItem(".table"),
		readline.PcItem(".help"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
