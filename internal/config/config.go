// Package config loads hue-invert defaults from a TOML file.
//
// The file is optional. Every key it omits keeps its built-in default, and
// command-line flags override whatever the file sets:
//
//	[sweep]
//	radius = 20
//	step = 10
//	interval_ms = 200
//
//	[window]
//	mode = "clamp"      # or "wrap"
//
//	[render]
//	encoding = "8bit"   # or "16bit"
//	workers = 0         # 0 = one per CPU
//
//	[display]
//	max_width = 1600
//	max_height = 900
//	gap = 10
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ironsheep/hue-invert/internal/imaging"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "HUE_INVERT_CONFIG"

// Config holds every setting that can come from the config file.
type Config struct {
	Sweep   SweepConfig   `toml:"sweep"`
	Window  WindowConfig  `toml:"window"`
	Render  RenderConfig  `toml:"render"`
	Display DisplayConfig `toml:"display"`
}

// SweepConfig configures the --save-anim animation.
type SweepConfig struct {
	Radius     float64 `toml:"radius"`
	Step       float64 `toml:"step"`
	IntervalMS int     `toml:"interval_ms"`
}

// WindowConfig configures hue window edge handling.
type WindowConfig struct {
	Mode string `toml:"mode"`
}

// RenderConfig configures the conversion pipeline.
type RenderConfig struct {
	Encoding string `toml:"encoding"`
	Workers  int    `toml:"workers"`
}

// DisplayConfig configures previews shown in the viewer.
type DisplayConfig struct {
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
	Gap       int `toml:"gap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sweep: SweepConfig{
			Radius:     imaging.DefaultSweepRadius,
			Step:       imaging.DefaultSweepStep,
			IntervalMS: int(imaging.DefaultFrameInterval / time.Millisecond),
		},
		Window: WindowConfig{Mode: imaging.WindowClamp.String()},
		Render: RenderConfig{Encoding: imaging.Encoding8Bit.String()},
		Display: DisplayConfig{
			MaxWidth:  1600,
			MaxHeight: 900,
			Gap:       10,
		},
	}
}

// DefaultPath returns $HUE_INVERT_CONFIG if set, otherwise
// ~/.hue-invert/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".hue-invert", "config.toml"), nil
}

// Load reads the TOML file at path on top of Default.
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
// A missing file returns an error matching os.ErrNotExist; use LoadOptional
// when the file may legitimately be absent.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when the file does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path as TOML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0600)
}

// Encode writes cfg to w as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Validate checks that every value parses and the sweep is usable.
func (c *Config) Validate() error {
	if _, err := c.WindowMode(); err != nil {
		return err
	}
	if _, err := c.SampleEncoding(); err != nil {
		return err
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers %d must not be negative", imaging.ErrInvalidArguments, c.Render.Workers)
	}
	_, err := c.SweepSpec()
	return err
}

// WindowMode parses window.mode.
func (c *Config) WindowMode() (imaging.WindowMode, error) {
	return imaging.ParseWindowMode(c.Window.Mode)
}

// SampleEncoding parses render.encoding.
func (c *Config) SampleEncoding() (imaging.SampleEncoding, error) {
	return imaging.ParseSampleEncoding(c.Render.Encoding)
}

// SweepSpec builds the imaging.Sweep described by the sweep and window sections.
func (c *Config) SweepSpec() (imaging.Sweep, error) {
	mode, err := c.WindowMode()
	if err != nil {
		return imaging.Sweep{}, err
	}
	s := imaging.Sweep{
		Radius:   c.Sweep.Radius,
		Step:     c.Sweep.Step,
		Interval: time.Duration(c.Sweep.IntervalMS) * time.Millisecond,
		Mode:     mode,
	}
	if err := s.Validate(); err != nil {
		return imaging.Sweep{}, err
	}
	return s, nil
}
