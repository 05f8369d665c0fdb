package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nosuchfile.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Repository.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "logs/items", cfg.Log.ItemLogDir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdfsync.yaml")
	content := `
repository:
  timeout: 5s
log:
  level: debug
  file: logs/run.log
  item_log_dir: /var/lib/rdfsync/items
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Repository.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "logs/run.log", cfg.Log.File)
	assert.Equal(t, "/var/lib/rdfsync/items", cfg.Log.ItemLogDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdfsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repository: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"zero timeout", func(c *Config) { c.Repository.Timeout = 0 }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"empty item log dir", func(c *Config) { c.Log.ItemLogDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(LogConfig{Level: "debug"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}
