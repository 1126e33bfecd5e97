package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Validate checks that the resolved settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q (must be an absolute http or https URL)", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}

	name := strings.TrimSpace(c.AllOutputFile)
	if name == "" {
		return fmt.Errorf("all_output_file is required")
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("all_output_file must be a file name, not a path: %q", c.AllOutputFile)
	}
	return nil
}
