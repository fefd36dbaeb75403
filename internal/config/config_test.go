package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
log:
  level: debug
display:
  ui: console
  ship_glyph: "#"
fleet:
  seed_human: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Display.UI != UIConsole || cfg.Display.Glyph() != '#' {
		t.Errorf("Display = %+v", cfg.Display)
	}
	if !cfg.Fleet.SeedHuman || cfg.Fleet.RequireComplete {
		t.Errorf("Fleet = %+v", cfg.Fleet)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Storage.Enabled || cfg.Storage.Path != DefaultDBPath {
		t.Errorf("Storage = %+v, expected defaults", cfg.Storage)
	}
	if !cfg.Log.Timestamps {
		t.Error("Log.Timestamps lost its default")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("display:\n  ui: web\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject an unknown ui mode")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
		{"tui", func(c *Config) { c.Display.UI = UITUI }, true},
		{"ascii glyph", func(c *Config) { c.Display.ShipGlyph = "S" }, true},
		{"storage off without path", func(c *Config) { c.Storage = StorageConfig{} }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"unknown ui", func(c *Config) { c.Display.UI = "gui" }, false},
		{"empty glyph", func(c *Config) { c.Display.ShipGlyph = "" }, false},
		{"two-rune glyph", func(c *Config) { c.Display.ShipGlyph = "##" }, false},
		{"storage on without path", func(c *Config) { c.Storage.Path = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"■", '■'},
		{"#", '#'},
		{"", 0},
		{"ab", 0},
	}
	for _, tc := range tests {
		if got := (DisplayConfig{ShipGlyph: tc.in}).Glyph(); got != tc.want {
			t.Errorf("Glyph(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
