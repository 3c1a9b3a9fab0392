// Package config provides YAML-based game configuration loading and
// difficulty presets for the Breakout arcade.
package config

// BreakoutConfig contains all tunable parameters for the game.
type BreakoutConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Grid     GridConfig     `yaml:"grid"`
	PowerUps PowerUpsConfig `yaml:"power_ups"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PhysicsConfig defines movement speeds in pixels per tick.
type PhysicsConfig struct {
	BallSpeed        float64 `yaml:"ball_speed"`         // Per-axis ball speed
	PaddleSpeed      float64 `yaml:"paddle_speed"`       // Paddle speed while a key is held
	LevelSpeedFactor float64 `yaml:"level_speed_factor"` // Ball speed multiplier per level
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width float64 `yaml:"width"`
}

// GridConfig defines the brick grid layout.
type GridConfig struct {
	Rows    int `yaml:"rows"`     // Starting row count
	MaxRows int `yaml:"max_rows"` // Row count cap as levels advance
	Cols    int `yaml:"cols"`
}

// PowerUpsConfig defines power-up drop behavior.
type PowerUpsConfig struct {
	Chance     float64 `yaml:"chance"`      // Per-brick drop probability
	DurationMS int     `yaml:"duration_ms"` // Effect duration in milliseconds
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"` // Base points per brick, multiplied by level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
