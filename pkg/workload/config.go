package workload

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes one benchmark workload.
type Config struct {
	Name string `yaml:"name"`
	// Size is the number of records per phase.
	Size int `yaml:"size"`
	// Keys selects the key generator: "int" for shuffled integers or
	// "ksuid" for random ksuid strings.
	Keys string `yaml:"keys"`
	// Seed drives the key generator so runs are repeatable.
	Seed int64 `yaml:"seed"`
	// Order is the tree branching factor for the btree target.
	Order int `yaml:"order"`
	// Targets lists the dictionaries to compare: btree, gomap, pebble.
	Targets []string `yaml:"targets"`
	// DataDir holds the pebble target's store; a temp dir when empty.
	DataDir string `yaml:"data_dir"`
}

// DefaultConfig returns a workload comparing all targets on a million
// shuffled integer keys.
func DefaultConfig() *Config {
	return &Config{
		Name:    "default",
		Size:    1_000_000,
		Keys:    "int",
		Seed:    1,
		Order:   64,
		Targets: []string{"btree", "gomap", "pebble"},
	}
}

// LoadConfig loads a workload description from a yaml file.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("workload file does not exist: %s", configPath)
	}
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid workload path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse workload file: %w", err)
	}
	return config, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Keys != "int" && c.Keys != "ksuid" {
		return fmt.Errorf("unknown key generator %q", c.Keys)
	}
	if len(c.Targets) == 0 {
		return fmt.Errorf("no targets configured")
	}
	for _, target := range c.Targets {
		switch target {
		case "btree", "gomap", "pebble":
		default:
			return fmt.Errorf("unknown target %q", target)
		}
	}
	return nil
}
