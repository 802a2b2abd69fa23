package gldraw

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	want := DefaultConfig()
	want.Title = "triangle"
	want.Width = 1024
	want.Height = 768
	want.SwapInterval = 0
	want.Backend = "headless"
	want.LogLevel = "debug"

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "gldraw.yaml", `
title: triangle
width: 1024
height: 768
swap_interval: 0
backend: headless
log_level: debug
`},
		{"yml", "gldraw.yml", "title: triangle\nwidth: 1024\nheight: 768\nswap_interval: 0\nbackend: headless\nlog_level: debug\n"},
		{"toml", "gldraw.toml", `
title = "triangle"
width = 1024
height = 768
swap_interval = 0
backend = "headless"
log_level = "debug"
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if got != want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoadConfigEmptyKeepsDefaults(t *testing.T) {
	got, err := LoadConfig(writeConfig(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got != DefaultConfig() {
		t.Errorf("LoadConfig(empty) = %+v, want defaults", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unknown extension", "gldraw.json", "{}", ErrConfigFormat},
		{"invalid size", "gldraw.yaml", "width: -1\n", ErrInvalidConfig},
		{"negative swap", "gldraw.toml", "swap_interval = -2\n", ErrInvalidConfig},
		{"bad log level", "gldraw.yaml", "log_level: loud\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.file, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	for _, file := range []struct{ name, content string }{
		{"gldraw.yaml", "titel: typo\n"},
		{"gldraw.toml", "titel = \"typo\"\n"},
	} {
		_, err := LoadConfig(writeConfig(t, file.name, file.content))
		if err == nil {
			t.Errorf("LoadConfig(%s) accepted an unknown key", file.name)
			continue
		}
		if !strings.Contains(err.Error(), file.name) {
			t.Errorf("LoadConfig(%s) error = %q, want it to name the file", file.name, err)
		}
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestConfigWith(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithTitle("t").WithSize(1, 2).WithFullscreen(true).WithSwapInterval(3).WithDrivers("p", "b")

	if base != DefaultConfig() {
		t.Error("With methods modified the receiver")
	}
	want := Config{Title: "t", Width: 1, Height: 2, Fullscreen: true, SwapInterval: 3, Platform: "p", Backend: "b", LogLevel: "info"}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if err := DefaultConfig().WithSize(0, 0).WithFullscreen(true).Validate(); err != nil {
		t.Errorf("fullscreen without size: Validate() = %v", err)
	}
	if err := DefaultConfig().WithDrivers("", "opengl").Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty platform: Validate() = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := Config{LogLevel: in}.Level()
		if err != nil || got != want {
			t.Errorf("Level(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
}
