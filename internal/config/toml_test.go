package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.Telegraph.UnitMs != nil || cfg.Sounder.Backend != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[telegraph]
unit-ms = 80
delay = 30
language = "alternating"
verbose = true

[sounder]
backend = "gpio"
gpio-pin = 17
tone-hz = 784.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Telegraph.UnitMs == nil || *cfg.Telegraph.UnitMs != 80 {
		t.Errorf("unit-ms not parsed: %+v", cfg.Telegraph.UnitMs)
	}
	if cfg.Telegraph.Language == nil || *cfg.Telegraph.Language != "alternating" {
		t.Errorf("language not parsed")
	}
	if cfg.Telegraph.WPM != nil {
		t.Errorf("unset wpm must stay nil")
	}
	if cfg.Sounder.Backend == nil || *cfg.Sounder.Backend != "gpio" {
		t.Errorf("backend not parsed")
	}
	if cfg.Sounder.GPIOPin == nil || *cfg.Sounder.GPIOPin != 17 {
		t.Errorf("gpio-pin not parsed")
	}
}
