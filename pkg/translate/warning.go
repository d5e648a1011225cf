package translate

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Position represents a location in the input text.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in code points
	Offset int // 0-based byte offset
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Warning records a code point that had no table entry and was written
// out as a placeholder instead.
type Warning struct {
	Rune    rune
	Name    string // text inside the \N{...} placeholder
	Pos     Position
	Context string // surrounding text from the same line
}

// Placeholder returns the text emitted in place of the code point.
func (w Warning) Placeholder() string {
	return `\N{` + w.Name + `}`
}

// NameOf returns the Unicode character name used in placeholders. Code
// points without a printable name (controls, unassigned) get U+XXXX
// form instead.
func NameOf(r rune) string {
	name := runenames.Name(r)
	if name == "" || strings.HasPrefix(name, "<") {
		return fmt.Sprintf("U+%04X", r)
	}
	return name
}
