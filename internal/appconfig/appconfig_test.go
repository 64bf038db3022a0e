// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad covers a valid file, malformed JSON, invalid settings and a
// missing file.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	valid := writeConfig(t, dir, "valid.json", `{
  "outputHTML": "out/index.html",
  "title": "Small Models, Big Math",
  "theme": { "fontFamily": "Mono", "animationMs": 800 }
}`)

	cfg, err := Load(valid)
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.HTMLPath() != "out/index.html" {
		t.Fatalf("expected configured html path, got %s", cfg.HTMLPath())
	}
	if cfg.XLSXPath() != defaultOutputXLSX {
		t.Fatalf("expected default xlsx path, got %s", cfg.XLSXPath())
	}
	if cfg.PageTitle() != "Small Models, Big Math" {
		t.Fatalf("unexpected title %q", cfg.PageTitle())
	}
	if cfg.ConfigPath != valid {
		t.Fatalf("expected ConfigPath %s, got %s", valid, cfg.ConfigPath)
	}
	theme := cfg.ChartTheme()
	if theme.FontFamily != "Mono" || theme.AnimationMs != 800 {
		t.Fatalf("unexpected theme %+v", theme)
	}

	broken := writeConfig(t, dir, "broken.json", `{ "title": `)
	if _, err := Load(broken); err == nil {
		t.Fatal("Load() with invalid JSON should have failed")
	}

	negative := writeConfig(t, dir, "negative.json", `{ "theme": { "animationMs": -5 } }`)
	if _, err := Load(negative); err == nil {
		t.Fatal("Load() with negative animation should have failed")
	}

	clash := writeConfig(t, dir, "clash.json", `{ "outputHTML": "a", "outputXLSX": "a" }`)
	if _, err := Load(clash); err == nil {
		t.Fatal("Load() with clashing outputs should have failed")
	}

	if _, err := Load(filepath.Join(dir, "nonexistent.json")); err == nil {
		t.Fatal("Load() with nonexistent file should have failed")
	}
}

func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.LogFilePath() != "mathbench.log" {
		t.Fatalf("expected default log file, got %s", cfg.LogFilePath())
	}
	if cfg.PageTitle() != DefaultTitle {
		t.Fatalf("expected default title, got %s", cfg.PageTitle())
	}
	if cfg.HTMLPath() != "dist/dashboard.html" {
		t.Fatalf("expected default html path, got %s", cfg.HTMLPath())
	}
	if len(cfg.ChartTheme().Options()) != 0 {
		t.Fatal("empty theme should not override presentation defaults")
	}
}

func TestShowConfig(t *testing.T) {
	var buf bytes.Buffer
	ShowConfig(&buf, "", nil, Config{Debug: true})
	out := buf.String()
	if !strings.Contains(out, "No config file loaded") {
		t.Fatalf("expected defaults notice, got %s", out)
	}
	if !strings.Contains(out, "Debug:           true") {
		t.Fatalf("expected fallback debug value, got %s", out)
	}
	if !strings.Contains(out, "Theme:           defaults") {
		t.Fatalf("expected default theme line, got %s", out)
	}

	buf.Reset()
	cfg := &Config{Theme: Theme{LegendColor: "#fff"}}
	ShowConfig(&buf, "config/config.json", cfg, Config{})
	out = buf.String()
	if !strings.Contains(out, "Config file: config/config.json") {
		t.Fatalf("expected config file line, got %s", out)
	}
	if !strings.Contains(out, "Legend Color:    #fff") {
		t.Fatalf("expected legend color line, got %s", out)
	}
}
