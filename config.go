package gldraw

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gldraw/internal/logging"
)

// maxConfigSize bounds the size of a config file accepted by LoadConfig.
const maxConfigSize = 1 << 20

var (
	// ErrInvalidConfig is returned by Validate and LoadConfig for values
	// that cannot open a window.
	ErrInvalidConfig = errors.New("gldraw: invalid config")

	// ErrConfigFormat is returned by LoadConfig for an unknown file
	// extension.
	ErrConfigFormat = errors.New("gldraw: unsupported config format")
)

// Config describes the window and drivers used by Open.
type Config struct {
	Title        string `yaml:"title" toml:"title"`
	Width        int    `yaml:"width" toml:"width"`
	Height       int    `yaml:"height" toml:"height"`
	Fullscreen   bool   `yaml:"fullscreen" toml:"fullscreen"`
	SwapInterval int    `yaml:"swap_interval" toml:"swap_interval"`

	// Platform and Backend name registered drivers.
	Platform string `yaml:"platform" toml:"platform"`
	Backend  string `yaml:"backend" toml:"backend"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// DefaultConfig returns an 800x600 vsynced window using the glfw and
// opengl drivers.
func DefaultConfig() Config {
	return Config{
		Title:        "gldraw",
		Width:        800,
		Height:       600,
		SwapInterval: 1,
		Platform:     "glfw",
		Backend:      "opengl",
		LogLevel:     "info",
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the window size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithFullscreen returns a copy of c that opens on the primary monitor.
func (c Config) WithFullscreen(on bool) Config {
	c.Fullscreen = on
	return c
}

// WithSwapInterval returns a copy of c with the swap interval set.
func (c Config) WithSwapInterval(n int) Config {
	c.SwapInterval = n
	return c
}

// WithDrivers returns a copy of c with the platform and backend set.
func (c Config) WithDrivers(platform, backend string) Config {
	c.Platform, c.Backend = platform, backend
	return c
}

// Validate reports the first value that cannot open a window.
func (c Config) Validate() error {
	switch {
	case !c.Fullscreen && (c.Width <= 0 || c.Height <= 0):
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SwapInterval < 0:
		return fmt.Errorf("%w: negative swap interval %d", ErrInvalidConfig, c.SwapInterval)
	case c.Platform == "":
		return fmt.Errorf("%w: no platform driver", ErrInvalidConfig)
	case c.Backend == "":
		return fmt.Errorf("%w: no graphics backend", ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file. Keys absent
// from the file keep their DefaultConfig values; unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		return cfg, fmt.Errorf("gldraw: config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("%w: %s is %d bytes", ErrInvalidConfig, path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("gldraw: config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("gldraw: config %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("gldraw: config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrConfigFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	logging.Logger().Debug("gldraw: config loaded", "path", path)
	return cfg, nil
}
