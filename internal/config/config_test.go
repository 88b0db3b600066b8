package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CATALOG_ENV", "test")
	t.Setenv("CATALOG_LOG_LEVEL", "DEBUG")
	t.Setenv("CATALOG_LOG_FORMAT", "json")
	t.Setenv("CATALOG_SEED", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, &Config{Env: "test", LogLevel: "debug", LogFormat: "json", Seed: true}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	t.Setenv("CATALOG_LOG_FORMAT", "xml")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoad_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_ENV=from-file\nCATALOG_LOG_LEVEL=error\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("CATALOG_ENV", "from-env")
	// Registered for cleanup only; godotenv sets it from the file.
	t.Setenv("CATALOG_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("CATALOG_LOG_LEVEL"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
}
