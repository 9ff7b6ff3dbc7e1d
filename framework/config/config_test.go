package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-listeners/framework/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_NAME", "APP_ENV", "APP_DEBUG", "LOG_LEVEL", "LOG_ENCODING",
		"INSPECT_ENABLED", "INSPECT_ADDR", "INSPECT_PREFIX"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "GoLaravel", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Env)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.Encoding)
	assert.False(t, cfg.Inspect.Enabled)
	assert.Equal(t, ":8000", cfg.Inspect.Addr)
	assert.Equal(t, "/_container", cfg.Inspect.Prefix)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("INSPECT_ENABLED", "true")

	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Inspect.Enabled)
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set, even to "".
	for _, k := range []string{"APP_NAME", "INSPECT_PREFIX"} {
		require.NoError(t, os.Unsetenv(k))
	}
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("INSPECT_PREFIX")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=Listeners\nINSPECT_PREFIX=/debug\n"), 0o600))

	cfg := config.Load(path)

	assert.Equal(t, "Listeners", cfg.App.Name)
	assert.Equal(t, "/debug", cfg.Inspect.Prefix)
}

func TestGetters(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("BAD_INT", "x")
	t.Setenv("SOME_BOOL", "true")

	assert.Equal(t, 42, config.GetInt("SOME_INT", 0))
	assert.Equal(t, 7, config.GetInt("BAD_INT", 7))
	assert.True(t, config.GetBool("SOME_BOOL", false))
	assert.Equal(t, "dflt", config.Get("UNSET_KEY_FOR_TEST", "dflt"))
}
