package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"coffee/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should use defaults without env file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		os.Unsetenv("HTTP_PORT")
		t.Setenv("LOG_LEVEL", "")
		os.Unsetenv("LOG_LEVEL")
		t.Setenv("LOG_FORMAT", "")
		os.Unsetenv("LOG_FORMAT")

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, cmd.Config{HTTPPort: "8080", LogLevel: "info", LogFormat: "text"}, cfg)
	})

	t.Run("should read values from env file", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		os.Unsetenv("HTTP_PORT")
		t.Setenv("LOG_LEVEL", "")
		os.Unsetenv("LOG_LEVEL")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\nLOG_LEVEL=debug\n"), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("should prefer the process environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "7070")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\n"), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.HTTPPort)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("should honour level and json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := cmd.NewLogger(cmd.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "drink", "latte")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"drink":"latte"`)
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := cmd.NewLogger(cmd.Config{LogLevel: "loud"}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		_, err := cmd.NewLogger(cmd.Config{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})

		require.Error(t, err)
	})
}
