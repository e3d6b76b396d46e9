package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigLogLevelOverride(t *testing.T) {
	resolved, err := resolveConfig("", "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", resolved.Log.Level)

	resolved, err = resolveConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, "info", resolved.Log.Level)
}

func TestResolveConfigRejectsUnknownLogLevel(t *testing.T) {
	_, err := resolveConfig("", "verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log-level")
}

func TestResolveConfigOverridesFileLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebna.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))

	resolved, err := resolveConfig(path, "warn")
	require.NoError(t, err)
	assert.Equal(t, "warn", resolved.Log.Level)

	_, err = resolveConfig(path, "loud")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "lebna dev\n", out.String())
}
