package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "precise.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Precision != DefaultPrecision {
		t.Errorf("Output.Precision = %v, want %v", cfg.Output.Precision, DefaultPrecision)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, FormatText)
	}
	if cfg.Look.Up != [3]float64{0, 1, 0} {
		t.Errorf("Look.Up = %v, want [0 1 0]", cfg.Look.Up)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Output.Precision != DefaultPrecision {
		t.Errorf("Output.Precision = %v, want %v", cfg.Output.Precision, DefaultPrecision)
	}
	if cfg.Output.Format != FormatText {
		t.Errorf("Output.Format = %v, want %v", cfg.Output.Format, FormatText)
	}

	cfg.Output.Precision = 2
	cfg.ApplyDefaults()
	if cfg.Output.Precision != 2 {
		t.Errorf("Output.Precision = %v, want 2 to be kept", cfg.Output.Precision)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[output]
precision = 3
format = "yaml"

[noise]
seed = 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Precision != 3 {
		t.Errorf("Output.Precision = %v, want 3", cfg.Output.Precision)
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
	if cfg.Noise.Seed != 7 {
		t.Errorf("Noise.Seed = %v, want 7", cfg.Noise.Seed)
	}
	if cfg.Look.Up != [3]float64{0, 1, 0} {
		t.Errorf("Look.Up should fall back to the default, got %v", cfg.Look.Up)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		invalid  bool
	}{
		{"bad format", "[output]\nformat = \"xml\"\n", true},
		{"negative precision", "[output]\nprecision = -2\n", true},
		{"huge precision", "[output]\nprecision = 40\n", true},
		{"broken toml", "[output\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if errors.Is(err, ErrInvalidConfig) != tt.invalid {
				t.Errorf("Load() error = %v, want ErrInvalidConfig: %v", err, tt.invalid)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := LoadFromEnv()
	if err != nil || cfg.Output.Format != FormatText {
		t.Fatalf("LoadFromEnv() = %v, %v; want the defaults", cfg, err)
	}

	t.Setenv(EnvVar, writeConfig(t, "[output]\nprecision = 2\n"))

	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Output.Precision != 2 {
		t.Errorf("Output.Precision = %v, want 2", cfg.Output.Precision)
	}
}
