// Package config loads the rowdemo configuration from TOML files.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/fracrow"
)

// DefaultSpacing is the gap between panes when the config sets none.
const DefaultSpacing = 1

type Config struct {
	// Spacing is the gap between panes in cells. nil means DefaultSpacing;
	// a pointer so an explicit 0 survives loading.
	Spacing *int `koanf:"spacing"`

	Panes []PaneConfig `koanf:"panes"`
}

// PaneConfig describes one pane of the demo row.
type PaneConfig struct {
	Title string `koanf:"title"`

	// Fraction is the pane's declared share of the row width. Omitted
	// (nil) or >= 1 means "share the remainder" — the same contract as
	// the fracrow attribute.
	Fraction *float64 `koanf:"fraction"`

	// Color is an optional hex color for the pane; unset panes are
	// colored from a generated palette.
	Color string `koanf:"color"`
}

// EffectiveSpacing resolves the configured spacing, clamped at zero.
func (c *Config) EffectiveSpacing() int {
	if c.Spacing == nil {
		return DefaultSpacing
	}
	if *c.Spacing < 0 {
		return 0
	}
	return *c.Spacing
}

// EffectiveFraction resolves a pane's declared fraction into the
// fracrow representation.
func (p PaneConfig) EffectiveFraction() float64 {
	if p.Fraction == nil {
		return fracrow.Unspecified
	}
	return *p.Fraction
}

// Load reads config files in priority order (later files win):
// ~/.config/rowdemo/config.toml, then ./rowdemo.toml. Missing files are
// fine; a demo with no config gets three even panes.
func Load() (*Config, error) {
	return load(configPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if len(cfg.Panes) == 0 {
		cfg.Panes = []PaneConfig{
			{Title: "one"},
			{Title: "two"},
			{Title: "three"},
		}
	}
	return cfg, nil
}

func configPaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rowdemo", "config.toml"))
	}
	// ./rowdemo.toml (pwd, highest priority)
	paths = append(paths, "rowdemo.toml")
	return paths
}
