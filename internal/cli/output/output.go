// Package output renders command results for humans and machines.
//
// A Renderer picks between styled terminal output, plain text, and
// JSON. Styling is only applied when writing to a terminal and the
// environment does not opt out of color.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how command output is rendered.
type Mode string

const (
	// ModeAuto picks styled text on a terminal, plain text when piped.
	ModeAuto Mode = "auto"
	// ModeText renders plain text.
	ModeText Mode = "text"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// ParseMode validates an output mode name.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case ModeAuto, ModeText, ModeJSON:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (valid: auto, text, json)", s)
	}
}

// Styles is the set of text styles shared by all commands.
type Styles struct {
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	FilePath lipgloss.Style
}

func styledSet() Styles {
	return Styles{
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bold:     lipgloss.NewStyle().Bold(true),
		FilePath: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func plainSet() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Success:  plain,
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Muted:    plain,
		Bold:     plain,
		FilePath: plain,
	}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer writing primary output to out and
// diagnostics to errOut.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
// Tests use it to force styled or plain output.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	r := &Renderer{out: out, errOut: errOut, mode: mode}
	if mode == ModeAuto && isTTY && !termenv.EnvNoColor() {
		r.styles = styledSet()
	} else {
		r.styles = plainSet()
	}
	return r
}

// EffectiveMode resolves ModeAuto to the concrete mode in effect.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Out returns the writer for primary output.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the writer for diagnostics.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// Styles returns the active style set.
func (r *Renderer) Styles() Styles { return r.styles }

// Printf writes formatted text to the primary output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line to the primary output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Success writes a line marked with a check to the primary output.
func (r *Renderer) Success(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.Success.Render("✓"), fmt.Sprintf(format, args...))
}

// Errorf writes a formatted diagnostic line to the error writer.
func (r *Renderer) Errorf(format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(r.errOut, r.styles.Error.Render(msg))
}

// Warningf writes a formatted warning line to the error writer.
func (r *Renderer) Warningf(format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(r.errOut, r.styles.Warning.Render(msg))
}

// JSON writes v as indented JSON to the primary output.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
