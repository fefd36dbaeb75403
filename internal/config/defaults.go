package config

import (
	_ "embed"
)

//go:embed defaults/seabattle.yaml
var defaultYAML []byte

// DefaultDBPath is where match history is kept unless configured otherwise.
const DefaultDBPath = "~/.seabattle/history.db"

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    DefaultDBPath,
		},
		Display: DisplayConfig{
			UI:        UIAuto,
			ShipGlyph: "■",
		},
	}
}
