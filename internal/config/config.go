// Package config handles the configuration directory, config file and settings.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const (
	// AppName is the application directory name.
	AppName = "todoexport"

	// ConfigFile is the optional YAML config filename inside Dir.
	ConfigFile = "config.yaml"

	// DefaultBaseURL is the public REST API the exporter reads from.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 10 * time.Second

	// DefaultAllOutputFile is the file written by the all-employees export.
	DefaultAllOutputFile = "todo_all_employees.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the API root, e.g. https://jsonplaceholder.typicode.com.
	BaseURL string

	// Timeout bounds every HTTP request.
	Timeout time.Duration

	// OutputDir is where export files are written. Empty means the
	// working directory.
	OutputDir string

	// AllOutputFile is the file name used by the all-employees export.
	AllOutputFile string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is set by the dispatcher; never nil once a command runs.
	Logger *zap.Logger
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoexport or $HOME/.config/todoexport.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default()
	cfg.Dir = dir
	return cfg, nil
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		AllOutputFile: DefaultAllOutputFile,
		Logger:        zap.NewNop(),
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the YAML config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasFile checks if the config file exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.FilePath())
	return err == nil
}

// OutputPath resolves a file name against OutputDir.
func (c *Config) OutputPath(name string) string {
	if c.OutputDir == "" {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}
