// Package main is the entry point for the uniclean CLI.
package main

import (
	"os"

	"github.com/plaintext-labs/uniclean/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
