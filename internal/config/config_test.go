package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hackpage/internal/config"
)

func TestConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir == "" {
		t.Error("expected a default data dir")
	}
	if cfg.DBPath != filepath.Join(cfg.DataDir, "hackpage.db") {
		t.Errorf("expected db path under data dir, got %q", cfg.DBPath)
	}
	if cfg.AssetDir() != filepath.Join(cfg.DataDir, "assets") {
		t.Errorf("unexpected asset dir %q", cfg.AssetDir())
	}
	if got := cfg.AutosaveInterval(); got != 30*time.Second {
		t.Errorf("expected default autosave interval 30s, got %s", got)
	}
}

func TestConfig_MissingFileIsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected a missing file to yield defaults, got %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("expected defaults applied")
	}
}

func TestConfig_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_dir: /tmp/hackpage-test
autosave:
  interval: 2m
publish:
  dir: /tmp/hackpage-out
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/hackpage-test" {
		t.Errorf("unexpected data dir %q", cfg.DataDir)
	}
	if cfg.DBPath != "/tmp/hackpage-test/hackpage.db" {
		t.Errorf("expected db path derived from data dir, got %q", cfg.DBPath)
	}
	if got := cfg.AutosaveInterval(); got != 2*time.Minute {
		t.Errorf("expected 2m interval, got %s", got)
	}
	if cfg.Publish.Dir != "/tmp/hackpage-out" {
		t.Errorf("unexpected publish dir %q", cfg.Publish.Dir)
	}
}

func TestConfig_AutosaveDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
autosave:
  enabled: false
  interval: 1m
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.AutosaveInterval(); got != 0 {
		t.Errorf("expected 0 interval when disabled, got %s", got)
	}
}

func TestConfig_BadIntervalFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("autosave:\n  interval: banana\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.AutosaveInterval(); got != 30*time.Second {
		t.Errorf("expected fallback to 30s, got %s", got)
	}
}

func TestConfig_MalformedYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected a parse error for malformed YAML")
	}
}
