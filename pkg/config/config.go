// Package config loads the project file that tells the compiler where
// sources live, where outputs go, and how generated functions are namespaced.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the project file looked up when no --config is given.
const DefaultPath = "dispa.yaml"

// Config is the project configuration.
type Config struct {
	// Source is the directory walked for .dspa files.
	Source string `yaml:"source"`
	// Target is the directory compiled .mcfunction files are written to,
	// mirroring the source tree.
	Target string `yaml:"target"`
	// TickFunction is the shared dispatch file that receives one trigger
	// line per compiled animation.
	TickFunction string `yaml:"tick_function"`
	// Namespace prefixes function references in trigger lines.
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Source:       "./src",
		Target:       "./objects",
		TickFunction: "./tick.mcfunction",
		Namespace:    "de",
	}
}

// Load reads a config file. A missing file is not an error: the defaults are
// written to path and returned, so a fresh project works without setup.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if err := Write(path, cfg); err != nil {
			return Config{}, fmt.Errorf("initializing config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Source == "" || cfg.Target == "" {
		return Config{}, fmt.Errorf("config %s: source and target must be set", path)
	}
	return cfg, nil
}

// Write serializes cfg to path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
