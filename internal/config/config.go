package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name looked up in the working directory
const DefaultConfigFile = "rdfsync.yaml"

// Config holds the tool's settings
type Config struct {
	Repository RepositoryConfig `yaml:"repository"`
	Log        LogConfig        `yaml:"log"`
}

// RepositoryConfig configures the repository HTTP client
type RepositoryConfig struct {
	// Timeout bounds each fetch and patch request
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig configures run logging and the item log
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`

	// File is an optional rolling log file; empty logs to stderr only
	File string `yaml:"file"`

	// MaxSizeMB caps the log file size before rotation
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups caps the number of rotated files kept
	MaxBackups int `yaml:"max_backups"`

	// ItemLogDir is the directory for the completed-items store
	ItemLogDir string `yaml:"item_log_dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Timeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 5,
			ItemLogDir: "logs/items",
		},
	}
}

// Load reads configuration from path, merged over the defaults.
// A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for usable values
func (c *Config) Validate() error {
	if c.Repository.Timeout <= 0 {
		return fmt.Errorf("repository timeout must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.ItemLogDir == "" {
		return fmt.Errorf("item log directory must be set")
	}
	return nil
}
