package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/plaintext-labs/uniclean/pkg/translate"
)

// FileResult reports the outcome of cleaning one file.
type FileResult struct {
	Path     string
	Changed  bool
	Written  bool
	Warnings []translate.Warning
	Err      error
}

// CleanFile translates one file and rewrites it in place when the
// content changed, preserving the file's permission bits. With dryRun
// set the file is never written.
func (e *Engine) CleanFile(path string, dryRun bool) FileResult {
	res := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}
	if info.IsDir() {
		res.Err = errors.New("is a directory")
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	if !utf8.Valid(data) {
		res.Err = errors.New("not valid UTF-8")
		return res
	}

	result := e.tr.Translate(string(data))
	res.Changed = result.Changed
	res.Warnings = result.Warnings

	if result.Changed && !dryRun {
		if err := os.WriteFile(path, []byte(result.Output), info.Mode().Perm()); err != nil {
			res.Err = fmt.Errorf("failed to write file: %w", err)
			return res
		}
		res.Written = true
	}

	e.logger.Debug("cleaned file",
		"path", path,
		"changed", res.Changed,
		"written", res.Written,
		"warnings", len(res.Warnings))
	return res
}

// CleanAll cleans paths in argument order. A failing file is recorded
// in its result and does not stop the run.
func (e *Engine) CleanAll(paths []string, dryRun bool) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, e.CleanFile(path, dryRun))
	}
	return results
}

// StreamResult reports the outcome of cleaning a stream.
type StreamResult struct {
	Changed  bool
	Warnings []translate.Warning
}

// CleanStream translates everything from r and writes the translated
// text to w.
func (e *Engine) CleanStream(r io.Reader, w io.Writer) (StreamResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return StreamResult{}, fmt.Errorf("failed to read input: %w", err)
	}
	if !utf8.Valid(data) {
		return StreamResult{}, errors.New("input is not valid UTF-8")
	}

	result := e.tr.Translate(string(data))
	if _, err := io.WriteString(w, result.Output); err != nil {
		return StreamResult{}, fmt.Errorf("failed to write output: %w", err)
	}

	e.logger.Debug("cleaned stream",
		"changed", result.Changed,
		"warnings", len(result.Warnings))
	return StreamResult{Changed: result.Changed, Warnings: result.Warnings}, nil
}
