// Package main provides a generator that turns a YAML mappings document
// into Go source for a charmap substitution table.
//
// Usage:
//
//	go run ./scripts/gentable -in=mappings.yaml -mode=ascii -out=pkg/charmap/ascii_gen.go
//
// The input uses the same syntax as the mappings section of
// uniclean.yaml, so a table can be grown as config overrides first and
// promoted to a builtin later. `uniclean tables --format yaml` emits a
// starting point.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/plaintext-labs/uniclean/pkg/translate"
	"gopkg.in/yaml.v3"
)

var (
	inFlag   = flag.String("in", "", "input YAML file (required)")
	outFlag  = flag.String("out", "", "output file path (required)")
	modeFlag = flag.String("mode", "ascii", "mappings section to extract")
	varFlag  = flag.String("var", "", "name of the generated variable (default <mode>Extra)")
)

func main() {
	flag.Parse()

	if *inFlag == "" {
		log.Fatal("--in flag is required")
	}
	if *outFlag == "" {
		log.Fatal("--out flag is required")
	}

	mode, err := charmap.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	varName := *varFlag
	if varName == "" {
		varName = string(mode) + "Extra"
	}

	raw, err := loadSection(*inFlag, string(mode))
	if err != nil {
		log.Fatalf("failed to load mappings: %v", err)
	}
	if len(raw) == 0 {
		log.Fatalf("no %s mappings found in %s", mode, *inFlag)
	}

	entries, err := charmap.ParseOverrides(raw)
	if err != nil {
		log.Fatalf("invalid mappings: %v", err)
	}
	log.Printf("Loaded %d entries from %s", len(entries), *inFlag)

	code := generateCode(*inFlag, mode, varName, entries)

	// Format the code
	formatted, err := format.Source([]byte(code))
	if err != nil {
		log.Printf("Warning: failed to format generated code: %v", err)
		formatted = []byte(code)
	}

	if err := os.WriteFile(*outFlag, formatted, 0o600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("Generated %s", *outFlag)
}

// loadSection reads the mappings for one mode. Both the uniclean.yaml
// shape, with the sections under a mappings key, and a bare
// {mode: {key: repl}} document are accepted.
func loadSection(path, mode string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Mappings map[string]map[string]string `yaml:"mappings"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Mappings != nil {
		return wrapped.Mappings[mode], nil
	}

	var flat map[string]map[string]string
	if err := yaml.Unmarshal(data, &flat); err != nil {
		return nil, err
	}
	return flat[mode], nil
}

func generateCode(source string, mode charmap.Mode, varName string, entries map[rune]string) string {
	runes := make([]rune, 0, len(entries))
	for r := range entries {
		runes = append(runes, r)
	}
	slices.Sort(runes)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by scripts/gentable. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "// Source: %s (%s section)\n", source, mode)
	fmt.Fprintf(&buf, "// Generated: %s\n\n", time.Now().Format("2006-01-02"))
	buf.WriteString("package charmap\n\n")

	fmt.Fprintf(&buf, "var %s = map[rune]string{\n", varName)
	for _, r := range runes {
		fmt.Fprintf(&buf, "\t%s: %q, // %s\n", strconv.QuoteRune(r), entries[r], translate.NameOf(r))
	}
	buf.WriteString("}\n")

	return buf.String()
}
