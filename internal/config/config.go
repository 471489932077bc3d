// Package config loads the game's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the resolved configuration with every default applied
type Config struct {
	Game  GameSettings
	Music MusicSettings
	UI    UISettings
}

// GameSettings contains round and table settings
type GameSettings struct {
	// Seed fixes the shuffle sequence when set
	Seed            *int64
	DealAnimationMS int
	DealerStandsOn  int
}

// MusicSettings contains background-music settings
type MusicSettings struct {
	Dir     string
	Volume  float64
	Shuffle bool
	Enabled bool
}

// UISettings contains terminal and logging settings
type UISettings struct {
	LogFile  string
	LogLevel string
	Color    bool
}

// file mirrors the HCL layout. Pointers distinguish "unset" from zero values
// so that `volume = 0` or `shuffle = false` survive default merging.
type file struct {
	Game  *gameBlock  `hcl:"game,block"`
	Music *musicBlock `hcl:"music,block"`
	UI    *uiBlock    `hcl:"ui,block"`
}

type gameBlock struct {
	Seed            *int64 `hcl:"seed,optional"`
	DealAnimationMS *int   `hcl:"deal_animation_ms,optional"`
	DealerStandsOn  *int   `hcl:"dealer_stands_on,optional"`
}

type musicBlock struct {
	Dir     *string  `hcl:"dir,optional"`
	Volume  *float64 `hcl:"volume,optional"`
	Shuffle *bool    `hcl:"shuffle,optional"`
	Enabled *bool    `hcl:"enabled,optional"`
}

type uiBlock struct {
	LogFile  *string `hcl:"log_file,optional"`
	LogLevel *string `hcl:"log_level,optional"`
	Color    *bool   `hcl:"color,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			DealAnimationMS: 500,
			DealerStandsOn:  17,
		},
		Music: MusicSettings{
			Dir:     "music",
			Volume:  0.5,
			Shuffle: true,
			Enabled: true,
		},
		UI: UISettings{
			LogFile:  "blackjack.log",
			LogLevel: "info",
			Color:    true,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	raw.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

func (raw *file) apply(cfg *Config) {
	if g := raw.Game; g != nil {
		cfg.Game.Seed = g.Seed
		setIf(&cfg.Game.DealAnimationMS, g.DealAnimationMS)
		setIf(&cfg.Game.DealerStandsOn, g.DealerStandsOn)
	}
	if m := raw.Music; m != nil {
		setIf(&cfg.Music.Dir, m.Dir)
		setIf(&cfg.Music.Volume, m.Volume)
		setIf(&cfg.Music.Shuffle, m.Shuffle)
		setIf(&cfg.Music.Enabled, m.Enabled)
	}
	if u := raw.UI; u != nil {
		setIf(&cfg.UI.LogFile, u.LogFile)
		setIf(&cfg.UI.LogLevel, u.LogLevel)
		setIf(&cfg.UI.Color, u.Color)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.DealerStandsOn != 17 {
		return fmt.Errorf("dealer_stands_on must be 17, got %d", c.Game.DealerStandsOn)
	}

	if c.Game.DealAnimationMS < 0 {
		return fmt.Errorf("deal_animation_ms cannot be negative")
	}

	if c.Music.Volume < 0 || c.Music.Volume > 1 {
		return fmt.Errorf("music volume must be between 0 and 1, got %g", c.Music.Volume)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// DealDuration returns the per-card deal animation time
func (c *Config) DealDuration() time.Duration {
	return time.Duration(c.Game.DealAnimationMS) * time.Millisecond
}
