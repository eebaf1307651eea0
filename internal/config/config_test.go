package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Planning.IterationsPerQuarter)
	assert.Equal(t, 2, cfg.Planning.IterationWeeks)
	assert.True(t, cfg.Notifications.Enabled)
	assert.Equal(t, "critical", cfg.Notifications.MinSeverity)
	assert.Empty(t, cfg.AI.APIKey)
}

func TestLoadParsesFileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OPENAI_API_KEY", "sk-env")

	dir := filepath.Join(home, ".config", "planpulse")
	require.NoError(t, os.MkdirAll(dir, 0755))
	data := `[planning]
iterations_per_quarter = 4
iteration_weeks = 3

[ai]
api_key = "sk-file"
model = "gpt-4o"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Planning.IterationsPerQuarter)
	assert.Equal(t, 3, cfg.Planning.IterationWeeks)
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	// Environment beats the file.
	assert.Equal(t, "sk-env", cfg.AI.APIKey)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")

	cfg := DefaultConfig()
	cfg.Planning.IterationsPerQuarter = 5
	require.NoError(t, Save(&cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, loaded.Planning.IterationsPerQuarter)
}
