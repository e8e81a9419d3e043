// Package config provides YAML-based configuration loading, schema
// validation and difficulty presets for the arena.
package config

import (
	"fmt"

	"github.com/vovakirdan/blarbs/internal/arena"
)

// Config contains everything needed to build a game session.
type Config struct {
	// Layout overrides the shipped puzzle when non-empty; one string per
	// stick row.
	Layout     []string         `yaml:"layout,omitempty"`
	Rules      RulesConfig      `yaml:"rules"`
	Chaser     ChaserConfig     `yaml:"chaser"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RulesConfig defines claim and life rules.
type RulesConfig struct {
	Claim string `yaml:"claim"` // "primary" or "any"
	Lives int    `yaml:"lives"` // 0 = unlimited
}

// ChaserConfig defines the chaser's behaviour.
type ChaserConfig struct {
	Disabled         bool    `yaml:"disabled"`
	ChaseProbability float64 `yaml:"chase_probability"`
	VerticalBias     float64 `yaml:"vertical_bias"`
}

// Point is an [x, y] tile in padded arena space.
type Point [2]int

// X returns the column.
func (p Point) X() int { return p[0] }

// Y returns the row.
func (p Point) Y() int { return p[1] }

// SpawnConfig defines where actors enter the arena.
type SpawnConfig struct {
	Player Point `yaml:"player"`
	Chaser Point `yaml:"chaser"`
}

// DifficultyConfig defines how chaser aggression ramps up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "boxes", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Boxes/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ChaseBoost float64 `yaml:"chase_boost"` // Added to chase probability at max difficulty
}

// ArenaLayout returns the configured layout, or the shipped one when none
// is set.
func (c Config) ArenaLayout() (arena.Layout, error) {
	if len(c.Layout) == 0 {
		return arena.DefaultLayout(), nil
	}
	l, err := arena.ParseLayout(c.Layout)
	if err != nil {
		return l, fmt.Errorf("config: layout: %w", err)
	}
	return l, nil
}

// Validate checks the fields the schema cannot express.
func (c Config) Validate() error {
	if _, err := c.ArenaLayout(); err != nil {
		return err
	}
	for name, p := range map[string]Point{"player": c.Spawn.Player, "chaser": c.Spawn.Chaser} {
		if !arena.InBounds(p.X(), p.Y()) {
			return fmt.Errorf("config: spawn.%s %v is outside the %dx%d arena", name, p, arena.ArenaW, arena.ArenaH)
		}
	}
	return nil
}
