package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: CIRCUITBOARD_WINDOW__WIDTH -> window.width.
const EnvPrefix = "CIRCUITBOARD_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CIRCUITBOARD_*). A missing file is not
// an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[ExportFormat]bool{
	FormatGIF: true,
	FormatPNG: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %v", c.TickRate)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	return c.Export.Validate()
}

// Validate checks the export settings on their own, so `render` flags can
// be checked after they override the file.
func (e *ExportConfig) Validate() error {
	if e.Width < 0 || e.Height < 0 {
		return fmt.Errorf("export.width and export.height must be non-negative, got %dx%d", e.Width, e.Height)
	}
	if e.Frames < 0 {
		return fmt.Errorf("export.frames must be non-negative")
	}
	if e.Warmup < 0 {
		return fmt.Errorf("export.warmup must be non-negative")
	}
	if !validFormats[e.Format] {
		return fmt.Errorf("invalid export.format %q: must be one of gif, png", e.Format)
	}
	if e.Output == "" {
		return fmt.Errorf("export.output is required")
	}
	if e.DelayMS < 0 {
		return fmt.Errorf("export.delay_ms must be non-negative")
	}
	return nil
}

// ResolveSeed returns the configured seed, or one derived from now when the
// seed is 0.
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
