package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/plaintext-labs/uniclean/internal/cli/config"
	"github.com/plaintext-labs/uniclean/internal/cli/output"
)

func TestNewVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantOut []string
		wantErr bool
	}{
		{
			name:    "default version",
			version: "0.1.0",
			wantOut: []string{"uniclean v0.1.0", "text cleaner"},
		},
		{
			name:    "custom version",
			version: "1.2.3",
			wantOut: []string{"uniclean v1.2.3"},
		},
		{
			name:    "dev version",
			version: "dev",
			wantOut: []string{"uniclean vdev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.ResetConfig()
			t.Cleanup(config.ResetConfig)

			cmd := NewVersionCommand(tt.version, "abc1234", "2026-01-02")
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			got := buf.String()
			for _, want := range tt.wantOut {
				if !strings.Contains(got, want) {
					t.Errorf("output should contain %q, got: %s", want, got)
				}
			}
		})
	}
}

func TestVersionCommandJSON(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Setenv("UNICLEAN_OUTPUT", "json")

	cmd := NewVersionCommand("9.9.9", "abc1234", "2026-01-02")
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var info output.VersionInfo
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if info.Version != "9.9.9" {
		t.Errorf("Version = %q, want %q", info.Version, "9.9.9")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "abc1234")
	}
	if info.BuildDate != "2026-01-02" {
		t.Errorf("BuildDate = %q, want %q", info.BuildDate, "2026-01-02")
	}
}

func TestVersionCommandMetadata(t *testing.T) {
	cmd := NewVersionCommand("test", "none", "unknown")

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}

	if cmd.Short == "" {
		t.Error("Short should not be empty")
	}

	if cmd.Long == "" {
		t.Error("Long should not be empty")
	}
}
