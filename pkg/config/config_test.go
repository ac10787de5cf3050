package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
	if cfg.Path != "src/App.vue" {
		t.Errorf("Path = %q, want %q", cfg.Path, "src/App.vue")
	}
	if cfg.Window != 20 {
		t.Errorf("Window = %d, want 20", cfg.Window)
	}

	m := cfg.Markers()
	if m.Start != DefaultStartMarker || m.End != DefaultEndTag || m.Context != DefaultContext || m.Window != DefaultWindow {
		t.Errorf("Markers() = %+v, want defaults", m)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
name: sidebar
path: web/index.html
start_marker: "<!-- sidebar -->"
end_tag: "</aside>"
context: sidebarOpen
window: 5
`
	path := writeTempFile(t, "blockrm.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Name != "sidebar" {
		t.Errorf("Name = %q, want %q", cfg.Name, "sidebar")
	}
	if cfg.Path != "web/index.html" {
		t.Errorf("Path = %q, want %q", cfg.Path, "web/index.html")
	}
	if cfg.StartMarker != "<!-- sidebar -->" {
		t.Errorf("StartMarker = %q", cfg.StartMarker)
	}
	if cfg.EndTag != "</aside>" {
		t.Errorf("EndTag = %q", cfg.EndTag)
	}
	if cfg.Context != "sidebarOpen" {
		t.Errorf("Context = %q", cfg.Context)
	}
	if cfg.Window != 5 {
		t.Errorf("Window = %d, want 5", cfg.Window)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "blockrm.yaml", "path: other/App.vue\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Path != "other/App.vue" {
		t.Errorf("Path = %q, want %q", cfg.Path, "other/App.vue")
	}
	if cfg.StartMarker != DefaultStartMarker {
		t.Errorf("StartMarker = %q, want default", cfg.StartMarker)
	}
	if cfg.Window != DefaultWindow {
		t.Errorf("Window = %d, want %d", cfg.Window, DefaultWindow)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/blockrm.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvPath, "from/env.vue")
	t.Setenv(EnvWindow, "7")

	path := writeTempFile(t, "blockrm.yaml", "path: from/file.vue\nwindow: 3\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Path != "from/env.vue" {
		t.Errorf("Path = %q, want %q", cfg.Path, "from/env.vue")
	}
	if cfg.Window != 7 {
		t.Errorf("Window = %d, want 7", cfg.Window)
	}
}

func TestLoad_InvalidWindowFromEnvironment(t *testing.T) {
	t.Setenv(EnvWindow, "twenty")

	path := writeTempFile(t, "blockrm.yaml", "name: popup\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for invalid window")
	}
	if !strings.Contains(err.Error(), "window") {
		t.Errorf("error = %v, want mention of window", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty context allowed", func(c *Config) { c.Context = "" }, ""},
		{"missing name", func(c *Config) { c.Name = "" }, "name"},
		{"missing path", func(c *Config) { c.Path = "" }, "path"},
		{"missing start marker", func(c *Config) { c.StartMarker = "" }, "start_marker"},
		{"missing end tag", func(c *Config) { c.EndTag = "" }, "end_tag"},
		{"zero window", func(c *Config) { c.Window = 0 }, "window"},
		{"negative window", func(c *Config) { c.Window = -3 }, "window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
