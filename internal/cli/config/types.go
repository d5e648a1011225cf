// Package config provides configuration management for the uniclean CLI.
//
// Settings come from four layers with ascending precedence: builtin
// defaults, a uniclean.yaml file, UNICLEAN_* environment variables,
// and command-line flags.
package config

import (
	"fmt"

	sharedcfg "github.com/plaintext-labs/uniclean/internal/config"
	"github.com/plaintext-labs/uniclean/pkg/charmap"
)

// Config holds all CLI configuration options.
type Config struct {
	Mode         charmap.Mode                 `koanf:"mode"`
	Normalize    bool                         `koanf:"normalize"`
	Decompose    bool                         `koanf:"decompose"`
	Verbose      bool                         `koanf:"verbose"`
	OutputFormat string                       `koanf:"output"`
	Stdout       bool                         `koanf:"stdout"`
	Mappings     map[string]map[string]string `koanf:"mappings"`
}

// Overrides returns the mapping overrides configured for mode, parsed
// into rune-keyed form. Sections are matched by exact mode name.
func (c *Config) Overrides(mode charmap.Mode) (map[rune]string, error) {
	raw, ok := c.Mappings[string(mode)]
	if !ok {
		return nil, nil
	}
	overrides, err := charmap.ParseOverrides(raw)
	if err != nil {
		return nil, fmt.Errorf("mappings.%s: %w", mode, err)
	}
	return overrides, nil
}

// Table builds the substitution table for the configured mode with any
// configured overrides applied.
func (c *Config) Table() (*charmap.Table, error) {
	table, err := charmap.ForMode(c.Mode)
	if err != nil {
		return nil, err
	}
	overrides, err := c.Overrides(c.Mode)
	if err != nil {
		return nil, err
	}
	return table.WithOverrides(overrides), nil
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultMode   = sharedcfg.DefaultMode
	DefaultOutput = sharedcfg.DefaultOutput
)
