package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
makuwro:
  environment: development
  token: abc123
  timeout_seconds: 10
logging:
  level: debug
  format: json
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Makuwro.Environment)
		assert.Equal(t, "abc123", cfg.Makuwro.Token)
		assert.Equal(t, 10, cfg.Makuwro.TimeoutSeconds)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "json", cfg.Logging.Format)
	})

	t.Run("defaults fill the gaps", func(t *testing.T) {
		path := writeConfig(t, `
makuwro:
  token: abc123
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Makuwro.Environment)
		assert.Equal(t, 30, cfg.Makuwro.TimeoutSeconds)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		assert.True(t, cfg.Logging.Color)
	})

	t.Run("missing file without explicit path uses defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Makuwro.Environment)
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid environment", func(t *testing.T) {
		path := writeConfig(t, `
makuwro:
  environment: staging
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid environment")
	})

	t.Run("invalid logging level", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: chatty
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})

	t.Run("invalid logging format", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  format: xml
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging format")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		path := writeConfig(t, `
makuwro:
  timeout_seconds: 0
`)

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout_seconds")
	})
}
