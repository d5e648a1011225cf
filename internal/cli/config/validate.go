package config

import (
	"fmt"

	"github.com/plaintext-labs/uniclean/pkg/charmap"
)

// validOutputFormats are the accepted values for the output setting.
var validOutputFormats = map[string]bool{
	"auto": true,
	"text": true,
	"json": true,
}

// Validate checks if the configuration is valid.
//
// Mode names are already validated while decoding; this covers the
// output format and the mapping sections, including sections for modes
// other than the active one, so a broken config file fails fast
// instead of on the next mode switch.
func (c *Config) Validate() error {
	if !validOutputFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (valid: auto, text, json)", c.OutputFormat)
	}

	for section, raw := range c.Mappings {
		mode, err := charmap.ParseMode(section)
		if err != nil {
			return fmt.Errorf("mappings: %w", err)
		}
		if _, err := charmap.ParseOverrides(raw); err != nil {
			return fmt.Errorf("mappings.%s: %w", mode, err)
		}
	}

	return nil
}
