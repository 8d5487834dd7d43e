package app

import (
	"os"
	"path/filepath"
	"testing"

	"mcp-fred/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication(t *testing.T) {
	t.Run("defaults with empty config directory", func(t *testing.T) {
		app, err := NewApplication(NewConfig(false, t.TempDir(), "", "", 0))
		require.NoError(t, err)

		assert.Equal(t, config.TransportStdio, app.fredCfg.Server.Transport)
		assert.NotNil(t, app.mcpServer)
	})

	t.Run("flag overrides win over config file", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte("server:\n  transport: stdio\n  port: 8090\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

		app, err := NewApplication(NewConfig(true, dir, config.TransportStreamableHTTP, "0.0.0.0", 9999))
		require.NoError(t, err)

		assert.Equal(t, config.TransportStreamableHTTP, app.fredCfg.Server.Transport)
		assert.Equal(t, "0.0.0.0", app.fredCfg.Server.Host)
		assert.Equal(t, 9999, app.fredCfg.Server.Port)
	})

	t.Run("malformed config file fails the bootstrap", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: ["), 0o644))

		_, err := NewApplication(NewConfig(false, dir, "", "", 0))
		assert.Error(t, err)
	})
}
