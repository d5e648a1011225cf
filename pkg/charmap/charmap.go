// Package charmap defines the per-mode substitution tables that drive
// translation of non-ASCII code points into ASCII, LaTeX, or XML/HTML
// safe replacements.
package charmap

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Mode selects the replacement vocabulary for translated text.
type Mode string

const (
	ModeASCII Mode = "ascii"
	ModeLaTeX Mode = "latex"
	ModeXML   Mode = "xml"
	ModeHTML  Mode = "html"
)

// Modes lists all valid modes in display order.
func Modes() []Mode {
	return []Mode{ModeASCII, ModeLaTeX, ModeXML, ModeHTML}
}

// ParseMode normalizes and validates a mode name.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case ModeASCII, ModeLaTeX, ModeXML, ModeHTML:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q (valid modes: ascii, latex, xml, html)", s)
	}
}

// Fallback is the strategy applied to code points that are neither in
// the table nor plain ASCII.
type Fallback string

const (
	// FallbackName substitutes a \N{UNICODE NAME} placeholder and flags
	// the code point for human attention.
	FallbackName Fallback = "name"
	// FallbackCharRef substitutes a decimal character reference
	// (&#NNN;) with no warning.
	FallbackCharRef Fallback = "charref"
)

// Table maps code points to replacement strings for one output mode.
// Tables are built once and never mutated afterwards, so lookups are
// safe for concurrent use.
type Table struct {
	mode     Mode
	entries  map[rune]string
	fallback Fallback
}

// ForMode returns the builtin table for mode.
func ForMode(mode Mode) (*Table, error) {
	switch mode {
	case ModeASCII:
		return &Table{mode: mode, entries: asciiTable, fallback: FallbackName}, nil
	case ModeLaTeX:
		return &Table{mode: mode, entries: latexTable, fallback: FallbackName}, nil
	case ModeXML, ModeHTML:
		// Character references cover every code point, so these modes
		// carry no entries of their own.
		return &Table{mode: mode, fallback: FallbackCharRef}, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// Mode reports which mode this table belongs to.
func (t *Table) Mode() Mode { return t.mode }

// Fallback reports the strategy for code points absent from the table.
func (t *Table) Fallback() Fallback { return t.fallback }

// Lookup returns the replacement for r and whether one exists.
func (t *Table) Lookup(r rune) (string, bool) {
	repl, ok := t.entries[r]
	return repl, ok
}

// Len returns the number of entries in the table.
func (t *Table) Len() int { return len(t.entries) }

// Runes returns the table's code points in ascending order.
func (t *Table) Runes() []rune {
	rs := make([]rune, 0, len(t.entries))
	for r := range t.entries {
		rs = append(rs, r)
	}
	slices.Sort(rs)
	return rs
}

// WithOverrides returns a copy of the table with overrides applied on
// top. An override value of "" removes the entry, forcing that code
// point through the fallback path.
func (t *Table) WithOverrides(overrides map[rune]string) *Table {
	if len(overrides) == 0 {
		return t
	}
	entries := maps.Clone(t.entries)
	if entries == nil {
		entries = make(map[rune]string, len(overrides))
	}
	for r, repl := range overrides {
		if repl == "" {
			delete(entries, r)
			continue
		}
		entries[r] = repl
	}
	return &Table{mode: t.mode, entries: entries, fallback: t.fallback}
}

// ParseOverrides converts string-keyed mapping entries, as written in a
// config file, into rune-keyed form. A key is either a single literal
// character or a code point in U+XXXX notation.
func ParseOverrides(raw map[string]string) (map[rune]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[rune]string, len(raw))
	for key, repl := range raw {
		r, err := parseRuneKey(key)
		if err != nil {
			return nil, err
		}
		overrides[r] = repl
	}
	return overrides, nil
}

func parseRuneKey(key string) (rune, error) {
	if rest, ok := strings.CutPrefix(strings.ToUpper(key), "U+"); ok {
		n, err := strconv.ParseUint(rest, 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, fmt.Errorf("mapping key %q is not a valid code point", key)
		}
		return rune(n), nil
	}
	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("mapping key %q must be a single character or U+XXXX code point", key)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, nil
}
