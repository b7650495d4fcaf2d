package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/inventory"
	"github.com/cognicore/lexical/pkg/lexical/metrics"
)

// Config is the root configuration of a metrics run.
type Config struct {
	// System names a predefined transcription system, or "custom" together
	// with InventoryPath.
	System        string    `yaml:"system"         env:"LEXICAL_SYSTEM"         env-default:"ipa-us"`
	InventoryPath string    `yaml:"inventory_path" env:"LEXICAL_INVENTORY_PATH"`
	Metrics       []string  `yaml:"metrics"        env:"LEXICAL_METRICS"        env-separator:","`
	Workers       int       `yaml:"workers"        env:"LEXICAL_WORKERS"        env-default:"1"`
	StorePath     string    `yaml:"store_path"     env:"LEXICAL_STORE_PATH"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). An empty path
// loads from ENV and defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1 (got %d)", internalerr.ErrInvalidConfig, c.Workers)
	}
	sys, err := inventory.ParseSystem(c.System)
	if err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrInvalidConfig, err)
	}
	if sys == inventory.Custom && c.InventoryPath == "" {
		return fmt.Errorf("%w: custom system needs inventory_path", internalerr.ErrInvalidConfig)
	}
	if _, err := c.Selection(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", internalerr.ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Selection parses the configured metric names.
func (c *Config) Selection() (metrics.Selection, error) {
	return ParseSelection(c.Metrics)
}
