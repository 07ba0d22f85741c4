package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, version+"\n", out.String())
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hubboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http_port: \"9000\"\nlogging:\n  level: warn\n"), 0o600))

	t.Cleanup(func() { cfgPath, httpPort, logLevel = "", "", "" })
	require.NoError(t, serveCmd.ParseFlags([]string{"--config", path, "--port", "9100"}))

	cfg, err := loadConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Cleanup(func() { cfgPath, httpPort, logLevel = "", "", "" })
	require.NoError(t, serveCmd.ParseFlags([]string{"--port", "not-a-port"}))

	_, err := loadConfig(serveCmd)
	assert.Error(t, err)
}
