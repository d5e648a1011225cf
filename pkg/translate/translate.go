// Package translate implements the scanner that rewrites text through
// a substitution table, one code point at a time.
package translate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Options adjust translation beyond the table itself.
type Options struct {
	// Normalize applies Unicode NFC normalization to the input before
	// scanning. Warning positions then refer to the normalized text.
	Normalize bool

	// Decompose gives otherwise unmapped code points a second chance:
	// combining marks are stripped from the decomposed form, and the
	// result is used when it comes out pure ASCII.
	Decompose bool
}

// Translator rewrites text through a substitution table. Each code
// point is resolved against the table first, passed through when it is
// plain ASCII, and otherwise replaced by the table's fallback form.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	table    *charmap.Table
	opts     Options
	stripper transform.Transformer
}

// New creates a Translator for the given table.
func New(table *charmap.Table, opts Options) *Translator {
	t := &Translator{table: table, opts: opts}
	if opts.Decompose {
		t.stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	return t
}

// Table returns the table the Translator resolves against.
func (t *Translator) Table() *charmap.Table { return t.table }

// Result is the outcome of translating one input.
type Result struct {
	Output   string
	Warnings []Warning
	Changed  bool
}

// Translate rewrites input and reports every code point that fell back
// to a placeholder, in document order.
func (t *Translator) Translate(input string) Result {
	if t.opts.Normalize {
		input = norm.NFC.String(input)
	}

	var out strings.Builder
	out.Grow(len(input) + len(input)/8)

	var warnings []Warning
	line, col := 1, 1
	for offset, r := range input {
		if repl, ok := t.table.Lookup(r); ok {
			out.WriteString(repl)
		} else if r <= unicode.MaxASCII {
			out.WriteRune(r)
		} else if folded, ok := t.foldMarks(r); ok {
			out.WriteString(folded)
		} else if t.table.Fallback() == charmap.FallbackCharRef {
			fmt.Fprintf(&out, "&#%d;", r)
		} else {
			name := NameOf(r)
			out.WriteString(`\N{` + name + `}`)
			warnings = append(warnings, Warning{
				Rune:    r,
				Name:    name,
				Pos:     Position{Line: line, Column: col, Offset: offset},
				Context: contextAround(input, offset),
			})
		}

		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	output := out.String()
	return Result{Output: output, Warnings: warnings, Changed: output != input}
}

// foldMarks strips combining marks from r's decomposed form, keeping
// the result only when it is non-empty pure ASCII.
func (t *Translator) foldMarks(r rune) (string, bool) {
	if t.stripper == nil {
		return "", false
	}
	folded, _, err := transform.String(t.stripper, string(r))
	if err != nil || folded == "" {
		return "", false
	}
	for _, c := range folded {
		if c > unicode.MaxASCII {
			return "", false
		}
	}
	return folded, true
}

// contextWindow is the number of code points kept on each side of a
// flagged code point in warning context.
const contextWindow = 20

// contextAround extracts the text surrounding offset, clipped to the
// line it sits on.
func contextAround(input string, offset int) string {
	start := strings.LastIndexByte(input[:offset], '\n') + 1
	end := strings.IndexByte(input[offset:], '\n')
	if end < 0 {
		end = len(input)
	} else {
		end += offset
	}

	lineText := input[start:end]
	rs := []rune(lineText)
	idx := utf8.RuneCountInString(lineText[:offset-start])

	lo := max(idx-contextWindow, 0)
	hi := min(idx+contextWindow+1, len(rs))
	snippet := string(rs[lo:hi])
	if lo > 0 {
		snippet = "..." + snippet
	}
	if hi < len(rs) {
		snippet += "..."
	}
	return snippet
}
