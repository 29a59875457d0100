package config

// ExportFormat selects how `render` writes captured frames.
type ExportFormat string

const (
	FormatGIF ExportFormat = "gif"
	FormatPNG ExportFormat = "png"
)

// Config is the top-level configuration, corresponding to circuitboard.yml.
type Config struct {
	Seed     uint64       `yaml:"seed" koanf:"seed"`
	TickRate float64      `yaml:"tick_rate" koanf:"tick_rate"`
	Window   WindowConfig `yaml:"window" koanf:"window"`
	Audio    AudioConfig  `yaml:"audio" koanf:"audio"`
	Log      LogConfig    `yaml:"log" koanf:"log"`
	Export   ExportConfig `yaml:"export" koanf:"export"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Width     int    `yaml:"width" koanf:"width"`
	Height    int    `yaml:"height" koanf:"height"`
	Title     string `yaml:"title" koanf:"title"`
	Resizable bool   `yaml:"resizable" koanf:"resizable"`
	VSync     bool   `yaml:"vsync" koanf:"vsync"`
}

// AudioConfig controls the regeneration spark sound.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled" koanf:"enabled"`
	Volume  float64 `yaml:"volume" koanf:"volume"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" koanf:"level"`
	Development bool   `yaml:"development" koanf:"development"`
}

// ExportConfig holds headless render settings.
type ExportConfig struct {
	Width   int          `yaml:"width" koanf:"width"`
	Height  int          `yaml:"height" koanf:"height"`
	Frames  int          `yaml:"frames" koanf:"frames"`
	Warmup  int          `yaml:"warmup" koanf:"warmup"`
	Format  ExportFormat `yaml:"format" koanf:"format"`
	Output  string       `yaml:"output" koanf:"output"`
	DelayMS int          `yaml:"delay_ms" koanf:"delay_ms"`
}
