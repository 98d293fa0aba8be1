package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "FORGE_PORT", "FORGE_TEMPLATES", "FORGE_EXAMPLE_CONTENT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "templates/**/*.yaml", cfg.Templates)
	assert.False(t, cfg.ExampleContent)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FORGE_PORT", "9090")
	t.Setenv("FORGE_EXAMPLE_CONTENT", "true")
	t.Setenv("FORGE_REPORT_DIR", "/tmp/reports")
	t.Setenv("FORGE_PREWARM", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.ExampleContent)
	assert.Equal(t, "/tmp/reports", cfg.ReportDir)
	assert.True(t, cfg.Prewarm)
}

func TestLoadRejectsBadBool(t *testing.T) {
	t.Setenv("FORGE_EXAMPLE_CONTENT", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

// unsetenv убирает переменные на время теста, t.Setenv вернёт их обратно.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
