// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Telegraph TelegraphConfig `toml:"telegraph"`
	Sounder   SounderConfig   `toml:"sounder"`
}

// TelegraphConfig maps transmission and cycle settings.
type TelegraphConfig struct {
	UnitMs       *int    `toml:"unit-ms"`
	WPM          *int    `toml:"wpm"`
	DelaySeconds *int    `toml:"delay"`
	RestSeconds  *int    `toml:"rest"`
	Language     *string `toml:"language"`
	Verbose      *bool   `toml:"verbose"`
}

// SounderConfig maps keyer backend settings.
type SounderConfig struct {
	Backend *string  `toml:"backend"`
	GPIOPin *int     `toml:"gpio-pin"`
	ToneHz  *float64 `toml:"tone-hz"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
