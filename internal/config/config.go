// Package config loads stickercube settings from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultYAML []byte

// Config holds all settings.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Notation NotationConfig `yaml:"notation"`
	Playback PlaybackConfig `yaml:"playback"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
}

// StorageConfig locates the snapshot database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// NotationConfig controls scramble parsing.
type NotationConfig struct {
	Strict bool `yaml:"strict"`
}

// PlaybackConfig controls move timing in the play view.
type PlaybackConfig struct {
	Interval      time.Duration `yaml:"interval"`
	QuickInterval time.Duration `yaml:"quick_interval"`
}

// RenderConfig controls image output.
type RenderConfig struct {
	CellSize int    `yaml:"cell_size"`
	Format   string `yaml:"format"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Image formats accepted by render.format.
var Formats = []string{"png", "webp", "tga"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage:  StorageConfig{Path: "~/.stickercube/stickercube.db"},
		Notation: NotationConfig{Strict: false},
		Playback: PlaybackConfig{
			Interval:      300 * time.Millisecond,
			QuickInterval: 150 * time.Millisecond,
		},
		Render: RenderConfig{CellSize: 32, Format: "png"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load loads the configuration.
// Search order: customPath -> ~/.stickercube/config.yaml -> ./configs/stickercube.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it
// changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "stickercube.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Playback.Interval <= 0 {
		return fmt.Errorf("playback.interval must be positive, got %s", c.Playback.Interval)
	}
	if c.Playback.QuickInterval <= 0 {
		return fmt.Errorf("playback.quick_interval must be positive, got %s", c.Playback.QuickInterval)
	}
	if c.Render.CellSize < 4 || c.Render.CellSize > 512 {
		return fmt.Errorf("render.cell_size must be between 4 and 512, got %d", c.Render.CellSize)
	}
	if !validFormat(c.Render.Format) {
		return fmt.Errorf("render.format must be one of %s, got %q", strings.Join(Formats, ", "), c.Render.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	return nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// StoragePath returns Storage.Path with a leading "~" expanded.
func (c Config) StoragePath() (string, error) {
	return ExpandHome(c.Storage.Path)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stickercube", "config.yaml")
}
