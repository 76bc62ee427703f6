package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a config that failed semantic validation
var ErrInvalid = errors.New("invalid config")

// Load overlays the YAML file at path on Default
// A missing file returns defaults with no error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c as YAML
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks semantic constraints
func (c *Config) Validate() error {
	var errs []string

	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		errs = append(errs, "field_width and field_height must be > 0")
	}
	if c.BaseBallRadius <= 0 {
		errs = append(errs, "base_ball_radius must be > 0")
	}
	if c.Friction <= 0 || c.Friction > 1 {
		errs = append(errs, "friction must be in (0,1]")
	}
	if c.GravityMassEffect < 0 || c.GravityMassEffect > 1 {
		errs = append(errs, "gravity_mass_effect must be in [0,1]")
	}
	if c.VoidSymbolSpawnRate < 0 || c.LifeSymbolSpawnRate < 0 ||
		c.VoidSymbolSpawnRate+c.LifeSymbolSpawnRate > 1 {
		errs = append(errs, "spawn rates must be >= 0 and sum to <= 1")
	}
	if c.VoidSizeMultiplierMin > c.VoidSizeMultiplierMax {
		errs = append(errs, "void_size_multiplier_min must be <= void_size_multiplier_max")
	}
	if c.WindInfluenceRadius < 0 || c.WindArrivalDistance < 0 || c.MinPointDistance < 0 {
		errs = append(errs, "wind distances must be >= 0")
	}
	if c.WindAngleLookback < 1 {
		errs = append(errs, "wind_angle_lookback must be >= 1")
	}
	if c.MaxLives < 0 || c.InitialLives < 0 || c.InitialLives > c.MaxLives {
		errs = append(errs, "lives must satisfy 0 <= initial_lives <= max_lives")
	}
	if c.BallTrailLength < 0 {
		errs = append(errs, "ball_trail_length must be >= 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}
