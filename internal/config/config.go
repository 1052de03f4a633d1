// Package config persists editor and style settings as YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StyleConfig mirrors the visual settings of the subtitle renderer.
type StyleConfig struct {
	FontSize       float64 `yaml:"font_size"`
	TextColor      string  `yaml:"text_color"`
	HighlightColor string  `yaml:"highlight_color"`
	PanelColor     string  `yaml:"panel_color"`

	Effect string `yaml:"effect"`
	Speed  int    `yaml:"speed"`

	Position string `yaml:"position"`

	ShadowEnabled bool   `yaml:"shadow_enabled"`
	ShadowColor   string `yaml:"shadow_color"`

	StrokeEnabled bool    `yaml:"stroke_enabled"`
	StrokeColor   string  `yaml:"stroke_color"`
	StrokeWidth   float64 `yaml:"stroke_width"`

	ShowOriginal        bool   `yaml:"show_original"`
	ShowTranslation     bool   `yaml:"show_translation"`
	TranslationPosition string `yaml:"translation_position"`
}

// EditorConfig holds timeline editing preferences.
type EditorConfig struct {
	MinSegmentDuration float64 `yaml:"min_segment_duration"`
	ZoomStep           float64 `yaml:"zoom_step"`
	InsertDuration     float64 `yaml:"insert_duration"`
}

// ExportConfig holds default export parameters.
type ExportConfig struct {
	Format string `yaml:"format"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
}

// Config is the root of the settings file.
type Config struct {
	Style  StyleConfig  `yaml:"style"`
	Editor EditorConfig `yaml:"editor"`
	Export ExportConfig `yaml:"export"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Style: StyleConfig{
			FontSize:            32,
			TextColor:           "#FFFFFF",
			HighlightColor:      "#FFD700",
			PanelColor:          "#000000A0",
			Effect:              "none",
			Speed:               5,
			Position:            "bottom",
			ShadowColor:         "#000000C8",
			StrokeColor:         "#000000",
			StrokeWidth:         2,
			ShowOriginal:        true,
			TranslationPosition: "below",
		},
		Editor: EditorConfig{
			MinSegmentDuration: 0.1,
			ZoomStep:           0.5,
			InsertDuration:     2.0,
		},
		Export: ExportConfig{
			Format: "srt",
			Width:  1280,
			Height: 720,
			FPS:    30,
		},
	}
}

// DefaultPath is the per-user settings location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(configDir, "subedit", "config.yaml"), nil
}

// Load reads a config file, filling unset fields from the defaults. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
