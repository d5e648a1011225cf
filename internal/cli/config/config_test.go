package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plaintext-labs/uniclean/pkg/charmap"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp moves the test into an empty directory so no stray
// uniclean.yaml or .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	ResetConfig()
	t.Cleanup(ResetConfig)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, charmap.ModeASCII, cfg.Mode)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.False(t, cfg.Normalize)
	assert.False(t, cfg.Decompose)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Stdout)
	assert.Empty(t, cfg.Mappings)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
mode: latex
normalize: true
mappings:
  ascii:
    "€": "EUR"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uniclean.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, charmap.ModeLaTeX, cfg.Mode)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, "EUR", cfg.Mappings["ascii"]["€"])
	assert.Equal(t, "uniclean.yaml", GetConfigFileUsed())
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	chdirTemp(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "uniclean.yaml"), []byte("mode: latex\n"), 0o644))
	t.Setenv("UNICLEAN_MODE", "xml")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, charmap.ModeXML, cfg.Mode)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("UNICLEAN_MODE", "xml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mode", DefaultMode, "")
	require.NoError(t, flags.Parse([]string{"--mode", "html"}))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, charmap.ModeHTML, cfg.Mode)
}

func TestLoadConfig_ModeShorthands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want charmap.Mode
	}{
		{"latex shorthand", []string{"--latex"}, charmap.ModeLaTeX},
		{"xml shorthand", []string{"--xml"}, charmap.ModeXML},
		{"disabled shorthand keeps default", []string{"--html=false"}, charmap.ModeASCII},
		{"no shorthand keeps default", nil, charmap.ModeASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.Bool("ascii", false, "")
			flags.Bool("latex", false, "")
			flags.Bool("xml", false, "")
			flags.Bool("html", false, "")
			require.NoError(t, flags.Parse(tt.args))

			cfg, err := LoadConfig("", flags)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Mode)
		})
	}
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "uniclean.yaml"), []byte("mode: klingon\n"), 0o644))

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestConfig_Overrides(t *testing.T) {
	cfg := &Config{
		Mappings: map[string]map[string]string{
			"ascii": {"€": "EUR", "U+2665": "<3"},
		},
	}

	overrides, err := cfg.Overrides(charmap.ModeASCII)
	require.NoError(t, err)
	assert.Equal(t, map[rune]string{'€': "EUR", '♥': "<3"}, overrides)

	empty, err := cfg.Overrides(charmap.ModeLaTeX)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestConfig_OverridesInvalidKey(t *testing.T) {
	cfg := &Config{
		Mappings: map[string]map[string]string{
			"ascii": {"not-a-rune": "x"},
		},
	}

	_, err := cfg.Overrides(charmap.ModeASCII)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mappings.ascii")
}

func TestConfig_Table(t *testing.T) {
	cfg := &Config{
		Mode: charmap.ModeASCII,
		Mappings: map[string]map[string]string{
			"ascii": {"—": "--", "•": ""},
		},
	}

	table, err := cfg.Table()
	require.NoError(t, err)

	repl, ok := table.Lookup('—')
	require.True(t, ok)
	assert.Equal(t, "--", repl)

	_, ok = table.Lookup('•')
	assert.False(t, ok, "empty override should remove the builtin entry")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  Config{Mode: charmap.ModeASCII, OutputFormat: "auto"},
		},
		{
			name:    "invalid output format",
			cfg:     Config{Mode: charmap.ModeASCII, OutputFormat: "csv"},
			wantErr: "invalid output format",
		},
		{
			name: "unknown mapping section",
			cfg: Config{
				Mode:         charmap.ModeASCII,
				OutputFormat: "text",
				Mappings:     map[string]map[string]string{"asci": {"€": "EUR"}},
			},
			wantErr: "unknown mode",
		},
		{
			name: "bad key in inactive section",
			cfg: Config{
				Mode:         charmap.ModeASCII,
				OutputFormat: "text",
				Mappings:     map[string]map[string]string{"latex": {"not-a-rune": "x"}},
			},
			wantErr: "mappings.latex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfig_RejectsBrokenMappings(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
mode: ascii
mappings:
  latex:
    "not-a-rune": "x"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uniclean.yaml"), []byte(yaml), 0o644))

	_, err := LoadConfig("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mappings.latex")
}

func TestLoadConfig_MappingsEndToEnd(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
mode: ascii
mappings:
  ascii:
    "☃": "snowman"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uniclean.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	table, err := cfg.Table()
	require.NoError(t, err)

	repl, ok := table.Lookup('☃')
	require.True(t, ok)
	assert.Equal(t, "snowman", repl)
}
