package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("parse embedded default: %v", err)
	}

	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Physics.BallSpeed != 5 {
		t.Errorf("ball speed = %v, want 5", cfg.Physics.BallSpeed)
	}
	if cfg.Physics.PaddleSpeed != 9 {
		t.Errorf("paddle speed = %v, want 9", cfg.Physics.PaddleSpeed)
	}
	if cfg.Grid.Rows != 5 || cfg.Grid.MaxRows != 10 || cfg.Grid.Cols != 10 {
		t.Errorf("grid = %+v, want 5/10/10", cfg.Grid)
	}
	if cfg.PowerUps.Chance != 0.2 || cfg.PowerUps.DurationMS != 5000 {
		t.Errorf("power-ups = %+v, want 0.2/5000", cfg.PowerUps)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Gameplay.BrickPoints != 100 {
		t.Errorf("gameplay = %+v, want 3/100", cfg.Gameplay)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := `
physics:
  ball_speed: 7
  paddle_speed: 12
  level_speed_factor: 1.2
paddle:
  width: 120
grid:
  rows: 3
  max_rows: 8
  cols: 6
power_ups:
  chance: 0.5
  duration_ms: 3000
gameplay:
  lives: 4
  brick_points: 50
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Physics.BallSpeed != 7 {
		t.Errorf("ball speed = %v, want 7", cfg.Physics.BallSpeed)
	}
	if cfg.PowerUps.DurationMS != 3000 {
		t.Errorf("duration = %d, want 3000", cfg.PowerUps.DurationMS)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, want 4", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing explicit config path")
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width != 150 || easy.Physics.BallSpeed != 4 {
		t.Errorf("easy preset = %+v", easy)
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.Paddle.Width != 80 || hard.Physics.BallSpeed != 6 {
		t.Errorf("hard preset = %+v", hard)
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultConfig() {
		t.Errorf("normal preset changed config: %+v", normal)
	}

	unknown := DefaultConfig()
	ApplyPreset(&unknown, DifficultyPreset("nightmare"))
	if unknown != DefaultConfig() {
		t.Errorf("unknown preset changed config: %+v", unknown)
	}
}
