// Package config reads deckplay's optional YAML configuration. Every
// field has a flag counterpart; flags win when both are set.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DeckPath string `yaml:"deck_path"`
	Color    string `yaml:"color"`
	Mute     bool   `yaml:"mute"`
	Resume   bool   `yaml:"resume"`

	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`

	Progress struct {
		Database string `yaml:"database"`
	} `yaml:"progress"`

	Log struct {
		File    string `yaml:"file"`
		Verbose bool   `yaml:"verbose"`
	} `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Color == "" {
		c.Color = "auto"
	}
}
