// Package config loads the precise command's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config path when --config isn't given.
const EnvVar = "PRECISE_CONFIG"

const (
	FormatText = "text"
	FormatYAML = "yaml"

	DefaultPrecision = 6
	MaxPrecision     = 17
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the complete command configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Noise  NoiseConfig  `toml:"noise"`
	Look   LookConfig   `toml:"look"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Precision int    `toml:"precision"` // Decimal places; 0 means the default
	Format    string `toml:"format"`    // "text" or "yaml"
}

// NoiseConfig holds Perlin noise settings
type NoiseConfig struct {
	Seed int `toml:"seed"`
}

// LookConfig holds the up vector used by the look command
type LookConfig struct {
	Up [3]float64 `toml:"up"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {

	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil

}

// LoadFromEnv loads the file named by PRECISE_CONFIG, or returns the defaults if it isn't set.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// ApplyDefaults sets default values for missing configuration. A precision of 0 means DefaultPrecision.
func (c *Config) ApplyDefaults() {
	if c.Output.Precision == 0 {
		c.Output.Precision = DefaultPrecision
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Look.Up == [3]float64{} {
		c.Look.Up = [3]float64{0, 1, 0}
	}
}

// Validate checks the configuration for values the command can't use.
func (c *Config) Validate() error {
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: output.precision must be between 0 and %d, got %d", ErrInvalidConfig, MaxPrecision, c.Output.Precision)
	}
	if c.Output.Format != FormatText && c.Output.Format != FormatYAML {
		return fmt.Errorf("%w: output.format must be %q or %q, got %q", ErrInvalidConfig, FormatText, FormatYAML, c.Output.Format)
	}
	return nil
}
