package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/neighbours"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
system: sampa-uk
metrics:
  - orth.length
  - orth.old20
  - phon.density-sub
  - stress.typicality
workers: 4
store_path: runs.db
log:
  level: debug
  format: json
`

func TestLoadFromYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "config.yaml", validYAML))
	require.NoError(t, err)

	assert.Equal(t, "sampa-uk", cfg.System)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "runs.db", cfg.StorePath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.True(t, sel.Orth.Length)
	assert.True(t, sel.Orth.OLD20)
	assert.True(t, sel.Phon.Density.Enabled)
	assert.Equal(t, neighbours.Substitution, sel.Phon.Density.Kind())
	assert.True(t, sel.Stress.Typicality)
	assert.False(t, sel.Phonographic.Any())
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("LEXICAL_WORKERS", "8")
	t.Setenv("LEXICAL_METRICS", "pg.pgld20,pg.connectivity")

	cfg, err := Load(writeFile(t, "config.yaml", validYAML))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Workers)

	sel, err := cfg.Selection()
	require.NoError(t, err)
	assert.True(t, sel.Phonographic.PGLD20)
	assert.True(t, sel.Phonographic.Connectivity)
	assert.False(t, sel.Orth.Any())
}

func TestLoadDefaultsFromEnv(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ipa-us", cfg.System)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{System: "ipa-us", Workers: 1, Log: LogConfig{Format: "text"}}
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"zero workers", func(c *Config) { c.Workers = 0 }, internalerr.ErrInvalidConfig},
		{"unknown system", func(c *Config) { c.System = "ipa-xx" }, internalerr.ErrUnknownSystem},
		{"custom without file", func(c *Config) { c.System = "custom" }, internalerr.ErrInvalidConfig},
		{"custom with file", func(c *Config) { c.System = "custom"; c.InventoryPath = "sys.yaml" }, nil},
		{"unknown metric", func(c *Config) { c.Metrics = []string{"orth.colour"} }, internalerr.ErrInvalidConfig},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, internalerr.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection([]string{" ORTH.Density-Sub ", "", "phon.biphone"})
	require.NoError(t, err)
	assert.Equal(t, neighbours.Substitution, sel.Orth.Density.Kind())
	assert.True(t, sel.Phon.Biphone)

	_, err = ParseSelection([]string{"nope"})
	assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)

	names := MetricNames()
	assert.Contains(t, names, "stress.secondary-code")
	assert.IsIncreasing(t, names)
}

func TestLoadInventory(t *testing.T) {
	path := writeFile(t, "system.yaml", `
consonants: [p, t, k, "ts"]
vowels: [a, i]
primary_stress: "'"
`)
	inv, err := LoadInventory(path)
	require.NoError(t, err)
	assert.Equal(t, inventory.Custom, inv.System())
	assert.Equal(t, []string{"p", "t", "k", "ts"}, inv.Consonants())
	assert.Equal(t, []string{"a", "i"}, inv.Vowels())
	assert.Equal(t, "'", inv.PrimaryStress())
}

func TestLoadInventoryRejectsMissingVowels(t *testing.T) {
	path := writeFile(t, "system.yaml", "consonants: [p, t]\n")
	_, err := LoadInventory(path)
	assert.ErrorIs(t, err, internalerr.ErrInvalidInput)
}
