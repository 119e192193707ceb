package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twbindgen/internal/codegen"
	"twbindgen/internal/generation"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "swift", cfg.Language)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, generation.FailFast, cfg.Policy())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twbindgen.yaml")
	content := `
input: include/TWString.yaml
language: go
format: yaml
workers: 3
skip_unsupported: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "include/TWString.yaml", cfg.Input)
	assert.Equal(t, "go", cfg.Language)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "-", cfg.Output, "defaults survive for unset keys")
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, generation.SkipFailed, cfg.Policy())
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1, 2"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		wantOK bool
	}{
		{"valid", func(c *Config) {}, true},
		{"missing input", func(c *Config) { c.Input = "" }, false},
		{"unknown language", func(c *Config) { c.Language = "kotlin" }, false},
		{"unknown format", func(c *Config) { c.Format = "toml" }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Input = "TWString.yaml"
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantOK {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}

	cfg := DefaultConfig()
	cfg.Input = "TWString.yaml"
	cfg.Language = "kotlin"
	require.ErrorIs(t, cfg.Validate(), codegen.ErrUnknownLanguage)
}
