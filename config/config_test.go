package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirserve/config"
)

func TestLoad_Defaults(t *testing.T) {
	// Load with no config files should use defaults
	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Serve.Root)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.CORS.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9000
serve:
  root: /srv/files
cors:
  enabled: true
  allowed_origins:
    - https://example.com
log:
  level: debug
  format: json
`
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(t, err)

	cfg, err := config.Load([]string{configPath}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/files", cfg.Serve.Root)
	assert.True(t, cfg.CORS.Enabled)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ConfigFileMerge(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yaml")
	baseContent := `
server:
  port: 8080
serve:
  root: ./public
log:
  level: info
`
	err := os.WriteFile(basePath, []byte(baseContent), 0o644)
	require.NoError(t, err)

	overridePath := filepath.Join(tmpDir, "override.yaml")
	overrideContent := `
server:
  port: 9001
`
	err = os.WriteFile(overridePath, []byte(overrideContent), 0o644)
	require.NoError(t, err)

	// Load with merge (later files override earlier)
	cfg, err := config.Load([]string{basePath, overridePath}, nil)
	require.NoError(t, err)

	// Overridden value
	assert.Equal(t, 9001, cfg.Server.Port)
	// Values from base kept
	assert.Equal(t, "./public", cfg.Serve.Root)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DIRSERVE_SERVER_PORT", "9002")
	t.Setenv("DIRSERVE_SERVE_ROOT", "/srv/env")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 9002, cfg.Server.Port)
	assert.Equal(t, "/srv/env", cfg.Serve.Root)
}

func TestLoad_InvalidPort(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("server:\n  port: 70000\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load([]string{configPath}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("log:\n  level: verbose\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load([]string{configPath}, nil)
	assert.Error(t, err)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("log:\n  format: xml\n"), 0o644)
	require.NoError(t, err)

	_, err = config.Load([]string{configPath}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoad_LogFormatFromEnv(t *testing.T) {
	t.Setenv("DIRSERVE_LOG_FORMAT", "json")

	cfg, err := config.Load(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidateRoot(t *testing.T) {
	t.Run("existing directory is accepted", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Serve.Root = t.TempDir()
		assert.NoError(t, cfg.ValidateRoot())
	})

	t.Run("missing directory is rejected", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Serve.Root = filepath.Join(t.TempDir(), "nope")
		assert.Error(t, cfg.ValidateRoot())
	})

	t.Run("regular file is rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		cfg := &config.Config{}
		cfg.Serve.Root = file
		assert.Error(t, cfg.ValidateRoot())
	})
}
