// Package config loads the extension's settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the extension settings.
type Config struct {
	Theme  ThemeConfig  `toml:"theme"`
	Events EventsConfig `toml:"events"`
	Style  StyleConfig  `toml:"style"`
}

// ThemeConfig controls motif detection.
type ThemeConfig struct {
	// Motif overrides brightness detection: "auto", "light" or "dark".
	Motif string `toml:"motif"`
}

// EventsConfig controls the scheduler loop.
type EventsConfig struct {
	// QueueSize is the deferred-dispatch queue capacity.
	QueueSize int `toml:"queue_size"`
}

// StyleConfig controls the icon offset patch.
type StyleConfig struct {
	// OffsetSelector is the selector of the rule FixOffset targets.
	OffsetSelector string `toml:"offset_selector"`

	// OffsetProperty is the property of the rule FixOffset targets.
	OffsetProperty string `toml:"offset_property"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{
			Motif: "auto",
		},
		Events: EventsConfig{
			QueueSize: 1024,
		},
		Style: StyleConfig{
			OffsetSelector: ".icon::before",
			OffsetProperty: "top",
		},
	}
}

// Load reads settings from path, layered over the defaults. A missing
// file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks settings for values the extension cannot honor.
func (c *Config) Validate() error {
	switch c.Theme.Motif {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("theme.motif must be auto, light or dark, got %q", c.Theme.Motif)
	}
	if c.Events.QueueSize <= 0 {
		return fmt.Errorf("events.queue_size must be positive, got %d", c.Events.QueueSize)
	}
	if c.Style.OffsetSelector == "" {
		return fmt.Errorf("style.offset_selector cannot be empty")
	}
	if c.Style.OffsetProperty == "" {
		return fmt.Errorf("style.offset_property cannot be empty")
	}
	return nil
}
