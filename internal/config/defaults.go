package config

import (
	_ "embed"
)

//go:embed defaults/blarbs.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when no file and
// no embedded default can be read.
func DefaultConfig() Config {
	return Config{
		Rules: RulesConfig{
			Claim: "primary",
			Lives: 3,
		},
		Chaser: ChaserConfig{
			ChaseProbability: 0.92,
			VerticalBias:     0.5,
		},
		Spawn: SpawnConfig{
			Player: Point{3, 0},
			Chaser: Point{17, 7},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "boxes",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				ChaseBoost: 0.06,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
