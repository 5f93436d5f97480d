package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iconhub.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme.Motif != "auto" {
		t.Errorf("Theme.Motif = %q, want \"auto\"", cfg.Theme.Motif)
	}
	if cfg.Events.QueueSize != 1024 {
		t.Errorf("Events.QueueSize = %d, want 1024", cfg.Events.QueueSize)
	}
	if cfg.Style.OffsetSelector == "" || cfg.Style.OffsetProperty == "" {
		t.Error("default style rule is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme.Motif != "auto" {
		t.Errorf("Theme.Motif = %q, want default \"auto\"", cfg.Theme.Motif)
	}
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[theme]
motif = "dark"

[events]
queue_size = 64
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Theme.Motif != "dark" {
		t.Errorf("Theme.Motif = %q, want \"dark\"", cfg.Theme.Motif)
	}
	if cfg.Events.QueueSize != 64 {
		t.Errorf("Events.QueueSize = %d, want 64", cfg.Events.QueueSize)
	}
	// Untouched section keeps its defaults.
	if cfg.Style.OffsetProperty != "top" {
		t.Errorf("Style.OffsetProperty = %q, want default \"top\"", cfg.Style.OffsetProperty)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "theme = [broken")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed TOML")
	}
}

func TestLoad_InvalidMotif(t *testing.T) {
	path := writeConfig(t, `
[theme]
motif = "purple"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() accepted an unknown motif")
	}
	if !strings.Contains(err.Error(), "theme.motif") {
		t.Errorf("error %q does not name the bad setting", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"light motif", func(c *Config) { c.Theme.Motif = "light" }, false},
		{"zero queue", func(c *Config) { c.Events.QueueSize = 0 }, true},
		{"negative queue", func(c *Config) { c.Events.QueueSize = -1 }, true},
		{"empty selector", func(c *Config) { c.Style.OffsetSelector = "" }, true},
		{"empty property", func(c *Config) { c.Style.OffsetProperty = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
