package config

import (
	"fmt"
	"os"
	"time"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string) error
}{
	{
		envVar: "TODOEXPORT_BASE_URL",
		apply: func(c *Config, v string) error {
			c.BaseURL = v
			return nil
		},
	},
	{
		envVar: "TODOEXPORT_TIMEOUT",
		apply: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("TODOEXPORT_TIMEOUT: %w", err)
			}
			c.Timeout = d
			return nil
		},
	},
	{
		envVar: "TODOEXPORT_OUTPUT_DIR",
		apply: func(c *Config, v string) error {
			c.OutputDir = v
			return nil
		},
	},
	{
		envVar: "TODOEXPORT_ALL_OUTPUT_FILE",
		apply: func(c *Config, v string) error {
			c.AllOutputFile = v
			return nil
		},
	},
}

// applyEnvOverrides applies non-empty environment variables to cfg.
func applyEnvOverrides(cfg *Config) error {
	for _, o := range envOverrides {
		if v := os.Getenv(o.envVar); v != "" {
			if err := o.apply(cfg, v); err != nil {
				return err
			}
		}
	}
	return nil
}
