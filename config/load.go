package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML file and overlays it on the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data on cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	case c.Clock.MaxStep <= 0:
		return fmt.Errorf("clock.max_step must be positive")
	case c.Clock.TPS <= 0:
		return fmt.Errorf("clock.tps must be positive")
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("physics.max_fall_speed must be positive")
	case c.Physics.MaxX <= c.Physics.MinX:
		return fmt.Errorf("physics.max_x must exceed physics.min_x")
	case c.Dash.Distance <= 0 || c.Dash.Speed <= 0:
		return fmt.Errorf("dash.distance and dash.speed must be positive")
	case c.Dash.EndThreshold <= 0 || c.Dash.EndThreshold > 1:
		return fmt.Errorf("dash.end_threshold must be in (0, 1]")
	case c.Dash.EaseInPortion <= 0 || c.Dash.EaseInPortion >= 1:
		return fmt.Errorf("dash.ease_in_portion must be in (0, 1)")
	case c.Attack.MaxDuration <= 0:
		return fmt.Errorf("attack.max_duration must be positive")
	}
	return nil
}
