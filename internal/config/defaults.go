package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultConfig returns the default Breakout configuration.
func DefaultConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: PhysicsConfig{
			BallSpeed:        5,
			PaddleSpeed:      9,
			LevelSpeedFactor: 1.1,
		},
		Paddle: PaddleConfig{
			Width: 100,
		},
		Grid: GridConfig{
			Rows:    5,
			MaxRows: 10,
			Cols:    10,
		},
		PowerUps: PowerUpsConfig{
			Chance:     0.2,
			DurationMS: 5000,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BrickPoints: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
