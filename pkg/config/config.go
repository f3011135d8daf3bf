// Package config loads overlay settings from a YAML file and turns them
// into queue options.
package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/parley/pkg/dialog"
	"github.com/entrhq/parley/pkg/easing"
	"github.com/entrhq/parley/pkg/locale"
)

// Config holds the user-tunable overlay settings.
type Config struct {
	// Animation enables fade-in and fade-out. Unset means enabled.
	Animation *bool `yaml:"animation,omitempty"`
	// Easing names the animation curve: linear, quad-out, cubic-out,
	// cubic-in-out or quart-out. Empty means cubic-out.
	Easing string `yaml:"easing,omitempty"`
	// MaskMargin insets the dimming mask from the terminal edges.
	MaskMargin int `yaml:"mask_margin,omitempty"`
	// MaskRadius rounds the mask corners.
	MaskRadius int `yaml:"mask_radius,omitempty"`
	// MaskColor is the dimming mask color as "#RRGGBB" or "#RRGGBBAA".
	// Empty means the built-in half-opaque black.
	MaskColor string `yaml:"mask_color,omitempty"`
	// Locales overrides the system locale preferences for button labels,
	// in descending priority (BCP 47 tags).
	Locales []string `yaml:"locales,omitempty"`
}

var curves = map[string]easing.Curve{
	"linear":       easing.Linear,
	"quad-out":     easing.QuadOut,
	"cubic-out":    easing.CubicOut,
	"cubic-in-out": easing.CubicInOut,
	"quart-out":    easing.QuartOut,
}

// Default returns the built-in settings: animated with cubic-out easing,
// no margin, square corners, system locales.
func Default() *Config {
	return &Config{}
}

// Load reads settings from the YAML file at path. An empty path means
// ~/.parley/config.yaml. A missing file is not an error; the defaults are
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, ".parley", "config.yaml")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings to the YAML file at path, creating parent
// directories as needed. An empty path means ~/.parley/config.yaml.
func (c *Config) Save(path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, ".parley", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the settings for values Options would reject.
func (c *Config) Validate() error {
	if c.Easing != "" {
		if _, ok := curves[c.Easing]; !ok {
			return fmt.Errorf("unknown easing curve %q", c.Easing)
		}
	}
	if c.MaskMargin < 0 {
		return fmt.Errorf("mask_margin must not be negative, got %d", c.MaskMargin)
	}
	if c.MaskRadius < 0 {
		return fmt.Errorf("mask_radius must not be negative, got %d", c.MaskRadius)
	}
	if c.MaskColor != "" {
		if _, err := parseColor(c.MaskColor); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the settings into queue options. A configured locale
// list is installed process-wide via locale.SetPreferences, so standard
// dialog buttons built afterwards pick it up.
func (c *Config) Options() ([]dialog.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []dialog.Option
	if c.Animation != nil && !*c.Animation {
		opts = append(opts, dialog.WithoutAnimation())
	} else if c.Easing != "" {
		opts = append(opts, dialog.WithEasing(curves[c.Easing]))
	}
	if c.MaskMargin > 0 {
		opts = append(opts, dialog.WithMaskMargin(dialog.UniformMargin(c.MaskMargin)))
	}
	if c.MaskRadius > 0 {
		opts = append(opts, dialog.WithMaskRadius(c.MaskRadius))
	}
	if c.MaskColor != "" {
		col, _ := parseColor(c.MaskColor) // validated above
		opts = append(opts, dialog.WithMaskColor(col))
	}
	if len(c.Locales) > 0 {
		locale.SetPreferences(c.Locales)
	}
	return opts, nil
}

// parseColor decodes "#RRGGBB" or "#RRGGBBAA" into an NRGBA color. An
// omitted alpha means fully opaque.
func parseColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return color.NRGBA{}, fmt.Errorf("mask_color must be #RRGGBB or #RRGGBBAA, got %q", s)
	}
	raw, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid mask_color %q: %w", s, err)
	}
	c := color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xFF}
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}
