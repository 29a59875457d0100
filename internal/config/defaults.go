package config

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:     0,
		TickRate: 60,
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "circuitboard",
			Resizable: true,
			VSync:     true,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.35,
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Width:   800,
			Height:  450,
			Frames:  180,
			Warmup:  60,
			Format:  FormatGIF,
			Output:  "circuitboard.gif",
			DelayMS: 20,
		},
	}
}
