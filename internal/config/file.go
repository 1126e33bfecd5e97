package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors config.yaml. Unset keys leave the current value alone.
type fileConfig struct {
	// BaseURL is the API root
	BaseURL string `yaml:"base_url"`

	// Timeout is a Go duration string, e.g. "10s"
	Timeout string `yaml:"timeout"`

	// OutputDir is the directory export files go to
	OutputDir string `yaml:"output_dir"`

	// AllOutputFile names the all-employees export file
	AllOutputFile string `yaml:"all_output_file"`
}

// Load builds the configuration for dir.
// It applies defaults, then config.yaml values, then environment overrides,
// then validates. A missing config file is not an error.
func Load(dir string) (*Config, error) {
	cfg, err := New(dir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config: invalid timeout %q: %w", fc.Timeout, err)
		}
		c.Timeout = d
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.AllOutputFile != "" {
		c.AllOutputFile = fc.AllOutputFile
	}
	return nil
}
