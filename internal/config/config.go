// Package config loads scheduling limits from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bryan-cox/shiftplanner/internal/model"
)

// Config is the shiftplanner configuration file.
type Config struct {
	Limits LimitsConfig `yaml:"limits"`
}

// LimitsConfig holds the scheduling limits. Omitted fields take the defaults.
type LimitsConfig struct {
	SeatCapacity *int `yaml:"seat_capacity"`
	WeeklyDayCap *int `yaml:"weekly_day_cap"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	d := model.DefaultLimits()
	return &Config{Limits: LimitsConfig{SeatCapacity: &d.SeatCapacity, WeeklyDayCap: &d.WeeklyDayCap}}
}

// Load reads the configuration file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	d := model.DefaultLimits()
	if c.Limits.SeatCapacity == nil {
		c.Limits.SeatCapacity = &d.SeatCapacity
	}
	if c.Limits.WeeklyDayCap == nil {
		c.Limits.WeeklyDayCap = &d.WeeklyDayCap
	}
	if err := c.ModelLimits().Validate(); err != nil {
		return fmt.Errorf("config: limits: %w", err)
	}
	return nil
}

// ModelLimits returns the limits to schedule under.
func (c *Config) ModelLimits() model.Limits {
	return model.Limits{SeatCapacity: *c.Limits.SeatCapacity, WeeklyDayCap: *c.Limits.WeeklyDayCap}
}
