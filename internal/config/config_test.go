package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.StorePath)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().ConfirmDelete, cfg.ConfirmDelete)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.ConfirmDelete = false
	cfg.LogLevel = "DEBUG"
	cfg.StorePath = "/tmp/elsewhere.db"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.False(t, loaded.ConfirmDelete)
	assert.Equal(t, "DEBUG", loaded.LogLevel)
	assert.Equal(t, "/tmp/elsewhere.db", loaded.StorePath)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKFLOW_LOG_LEVEL", "ERROR")

	cfg := DefaultConfig()
	assert.Equal(t, "ERROR", cfg.LogLevel)
}
