// Package config holds configuration defaults shared across the CLI.
package config

// Default configuration values.
const (
	DefaultMode   = "ascii"
	DefaultOutput = "auto" // Auto-detect: TTY=styled, non-TTY=plain
)

// FileNames lists the config file names probed in the working
// directory, in priority order.
func FileNames() []string {
	return []string{"uniclean.yaml", "uniclean.yml"}
}
