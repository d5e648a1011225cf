// Package engine orchestrates file and stream cleaning.
// It wires a substitution table into a translator and applies the
// result to whole inputs, rewriting files in place only when their
// content actually changed.
package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/plaintext-labs/uniclean/pkg/translate"
)

// Engine applies one mode's translation to files and streams.
type Engine struct {
	table *charmap.Table
	tr    *translate.Translator

	// Structured logger
	logger *slog.Logger
}

// Config holds engine configuration.
type Config struct {
	// Table is the substitution table to translate through.
	Table *charmap.Table
	// Normalize applies NFC normalization to input before translating.
	Normalize bool
	// Decompose strips combining marks from unmapped code points and
	// keeps the result when it is pure ASCII.
	Decompose bool
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine for the given table.
func New(cfg Config) (*Engine, error) {
	if cfg.Table == nil {
		return nil, errors.New("substitution table is required")
	}

	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	logger.Debug("initializing engine",
		"mode", cfg.Table.Mode(),
		"entries", cfg.Table.Len(),
		"normalize", cfg.Normalize,
		"decompose", cfg.Decompose)

	return &Engine{
		table: cfg.Table,
		tr: translate.New(cfg.Table, translate.Options{
			Normalize: cfg.Normalize,
			Decompose: cfg.Decompose,
		}),
		logger: logger,
	}, nil
}

// Table returns the active substitution table.
func (e *Engine) Table() *charmap.Table {
	return e.table
}

// Translate rewrites a single string through the active table.
func (e *Engine) Translate(input string) translate.Result {
	return e.tr.Translate(input)
}
