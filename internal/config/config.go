package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"twbindgen/internal/codegen"
	"twbindgen/internal/generation"
)

// Config holds twbindgen settings. Command line flags override file values.
type Config struct {
	// Manifest produced by the header grammar
	Input string `yaml:"input"`

	// Overrides the manifest prefix when set
	Prefix string `yaml:"prefix"`

	Language string `yaml:"language"` // swift, go
	Output   string `yaml:"output"`   // "-" writes to stdout
	Format   string `yaml:"format"`   // json, yaml

	// Concurrent assemblies, 0 means GOMAXPROCS
	Workers int `yaml:"workers"`

	// Skip declarations that fail instead of aborting the run
	SkipUnsupported bool `yaml:"skip_unsupported"`

	Logging LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Language: "swift",
		Output:   "-",
		Format:   string(generation.FormatJSON),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input manifest path is missing")
	}
	if _, err := codegen.ResolverFor(c.Language); err != nil {
		return err
	}
	if _, err := generation.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	return nil
}

func (c *Config) Policy() generation.FailurePolicy {
	if c.SkipUnsupported {
		return generation.SkipFailed
	}

	return generation.FailFast
}
