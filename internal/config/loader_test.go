package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, GetDefaultConfig(), cfg)
		assert.Equal(t, TransportStdio, cfg.Server.Transport)
		assert.Equal(t, "https://api.stlouisfed.org/fred", cfg.FRED.BaseURL)
	})

	t.Run("config file overlays defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("server:\n  transport: streamable-http\n  port: 9000\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), content, 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, TransportStreamableHTTP, cfg.Server.Transport)
		assert.Equal(t, 9000, cfg.Server.Port)
		// Untouched sections keep their defaults.
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, "https://api.stlouisfed.org/fred", cfg.FRED.BaseURL)
	})

	t.Run("custom upstream base URL", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("fred:\n  baseURL: http://localhost:9999/fred\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), content, 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999/fred", cfg.FRED.BaseURL)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("server: ["), 0o644))

		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}
