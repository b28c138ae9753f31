package trials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trials.hcl")
	content := `
trials    = 500
deck_size = 8
seed      = 42
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Trials)
	assert.Equal(t, 8, cfg.DeckSize)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)

	// Unset fields fall back to defaults.
	assert.Equal(t, DefaultConfig().Workers, cfg.Workers)
	assert.Equal(t, DefaultConfig().Progress, cfg.Progress)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfigBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("trials = = 1"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"negative deck size", func(c *Config) { c.DeckSize = -1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"bad progress", func(c *Config) { c.Progress = "spinner" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	good := DefaultConfig()
	assert.NoError(t, good.Validate())
}
