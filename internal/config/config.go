package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the compiscript.yaml project configuration.
type Config struct {
	// StrictProps enables the E_PROP_UNDEF diagnostic for accesses to
	// properties the class (and its base chain) does not declare.
	StrictProps bool `yaml:"strict_props"`

	// Color controls diagnostic coloring: "auto" (default, only on a
	// terminal), "always" or "never".
	Color string `yaml:"color"`
}

// Default returns the configuration used when no compiscript.yaml exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads and validates a compiscript.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	switch cfg.Color {
	case "", "auto":
		cfg.Color = "auto"
	case "always", "never":
	default:
		return nil, fmt.Errorf("%s: valor de color inválido: %q", path, cfg.Color)
	}
	return cfg, nil
}

// LoadForSource looks for compiscript.yaml next to the given source file
// and in the working directory. A missing file yields the defaults.
func LoadForSource(sourcePath string) (*Config, error) {
	candidates := []string{
		filepath.Join(filepath.Dir(sourcePath), ConfigFileName),
		ConfigFileName,
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}
