// Package config provides configuration loading for the samplegen CLI.
// Only ambient settings live here; the artifact variants themselves are
// fixed and not configurable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the ambient settings for a generation run.
type Config struct {
	// OutDir is the directory artifacts are written into.
	OutDir string `yaml:"out_dir"`

	// FontPath overrides system font discovery for overlay labels.
	FontPath string `yaml:"font_path"`

	// FFmpegPath overrides ffmpeg discovery for the video encoder.
	FFmpegPath string `yaml:"ffmpeg_path"`

	// SkipVideo disables the video artifact.
	SkipVideo bool `yaml:"skip_video"`

	// VideoQuality is the CRF value passed to the encoder (0-63).
	VideoQuality int `yaml:"video_quality"`

	// Debug enables saving intermediate canvases to DebugDir.
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	// LogLevel is one of debug, info, warn, error, quiet.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutDir:       "samples",
		VideoQuality: 30,
		DebugDir:     "./debug",
		LogLevel:     "info",
	}
}

// Load reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
