package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 60.0, cfg.TickRate)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.Resizable)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, FormatGIF, cfg.Export.Format)
	require.NoError(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuitboard.yml")

	original := DefaultConfig()
	original.Seed = 1234
	original.TickRate = 30
	original.Window.Width = 640
	original.Audio.Enabled = true
	original.Export.Format = FormatPNG
	original.Export.Output = "frames"

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: 300\nlog:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 60.0, cfg.TickRate)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CIRCUITBOARD_SEED", "77")
	t.Setenv("CIRCUITBOARD_WINDOW__HEIGHT", "480")
	t.Setenv("CIRCUITBOARD_AUDIO__ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Seed)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.True(t, cfg.Audio.Enabled)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "tick_rate", envKey("CIRCUITBOARD_TICK_RATE"))
	assert.Equal(t, "export.delay_ms", envKey("CIRCUITBOARD_EXPORT__DELAY_MS"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }},
		{"unknown format", func(c *Config) { c.Export.Format = "mp4" }},
		{"negative frames", func(c *Config) { c.Export.Frames = -1 }},
		{"negative warmup", func(c *Config) { c.Export.Warmup = -1 }},
		{"missing output", func(c *Config) { c.Export.Output = "" }},
		{"negative delay", func(c *Config) { c.Export.DelayMS = -5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolveSeed(t *testing.T) {
	now := time.Unix(1700000000, 42)

	cfg := DefaultConfig()
	assert.Equal(t, uint64(now.UnixNano()), cfg.ResolveSeed(now))

	cfg.Seed = 7
	assert.Equal(t, uint64(7), cfg.ResolveSeed(now))
}
