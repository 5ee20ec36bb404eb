package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.OutDir != "samples" {
		t.Errorf("expected out dir %q, got %q", "samples", cfg.OutDir)
	}
	if cfg.VideoQuality != 30 {
		t.Errorf("expected video quality 30, got %d", cfg.VideoQuality)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.SkipVideo {
		t.Error("video should be enabled by default")
	}
	if cfg.DebugDir != "./debug" {
		t.Errorf("expected debug dir ./debug, got %q", cfg.DebugDir)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
out_dir: fixtures
skip_video: true
video_quality: 45
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutDir != "fixtures" {
		t.Errorf("expected out dir fixtures, got %q", cfg.OutDir)
	}
	if !cfg.SkipVideo {
		t.Error("expected skip_video to be set")
	}
	if cfg.VideoQuality != 45 {
		t.Errorf("expected video quality 45, got %d", cfg.VideoQuality)
	}
	// Fields absent from the file keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/no/such/config.yml"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("out_dir: [unterminated"), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
