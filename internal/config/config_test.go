package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("ORACULO_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORACULO_CONFIG_DIR", dir)
	t.Setenv("GEMINI_API_KEY", "")

	cfg := &Config{
		Model:          "gemini-3-flash-preview",
		APIKey:         "stored-key",
		Temperature:    0.7,
		ThinkingBudget: 1024,
		Debug:          true,
	}
	require.NoError(t, cfg.Save())
	assert.True(t, Exists())

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "stored-key", loaded.ResolvedAPIKey())
}

func TestLoadBackfillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORACULO_CONFIG_DIR", dir)

	require.NoError(t, (&Config{APIKey: "k"}).Save())

	loaded, err := Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "gemini-3-pro-preview", loaded.Model)
	assert.Equal(t, 0.9, loaded.Temperature)
	assert.Equal(t, 32768, loaded.ThinkingBudget)
}

func TestEnvKeyOverridesStored(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{APIKey: "stored-key"}
	assert.Equal(t, "env-key", cfg.ResolvedAPIKey())
	assert.True(t, cfg.HasAPIKey())
}

func TestHasAPIKeyWithoutAnySource(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg := DefaultConfig()
	assert.False(t, cfg.HasAPIKey())
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ORACULO_CONFIG_DIR", dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

func TestGetModel(t *testing.T) {
	m := GetModel("gemini-3-pro-preview")
	require.NotNil(t, m)
	assert.NotEmpty(t, m.Description)

	assert.Nil(t, GetModel("unknown-model"))
}
