// Package config provides YAML-based configuration loading for seabattle.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// UI modes accepted by Display.UI.
const (
	UIAuto    = "auto"
	UIConsole = "console"
	UITUI     = "tui"
)

// Config contains all seabattle settings.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Fleet   FleetConfig   `yaml:"fleet"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
	File       string `yaml:"file"`
}

// StorageConfig controls the match history database.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DisplayConfig selects the frontend and how vessels are drawn.
type DisplayConfig struct {
	UI        string `yaml:"ui"`
	ShipGlyph string `yaml:"ship_glyph"`
}

// FleetConfig controls fleet seeding.
type FleetConfig struct {
	SeedHuman       bool `yaml:"seed_human"`
	RequireComplete bool `yaml:"require_complete"`
}

// Glyph returns the ship glyph as a rune, or 0 if it is not a single rune.
func (d DisplayConfig) Glyph() rune {
	if utf8.RuneCountInString(d.ShipGlyph) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(d.ShipGlyph)
	return r
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	switch c.Display.UI {
	case UIAuto, UIConsole, UITUI:
	default:
		return fmt.Errorf("config: display.ui %q: want %s, %s or %s", c.Display.UI, UIAuto, UIConsole, UITUI)
	}
	if c.Display.Glyph() == 0 {
		return fmt.Errorf("config: display.ship_glyph %q: want exactly one character", c.Display.ShipGlyph)
	}
	if c.Storage.Enabled && c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path is empty")
	}
	return nil
}
