package breakout

import (
	"github.com/avorobev/breakout-tui/internal/core"
)

// PowerUpType identifies a bonus dropped by a destroyed brick.
type PowerUpType int

const (
	PowerUpNone PowerUpType = iota
	PowerUpPaddleSize
	PowerUpSlowBall
	PowerUpExtraLife
)

// powerUpTypes lists the droppable types for uniform random selection.
var powerUpTypes = []PowerUpType{PowerUpPaddleSize, PowerUpSlowBall, PowerUpExtraLife}

// String returns a human-readable name for the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpNone:
		return "None"
	case PowerUpPaddleSize:
		return "PaddleSize"
	case PowerUpSlowBall:
		return "SlowBall"
	case PowerUpExtraLife:
		return "ExtraLife"
	default:
		return "Unknown"
	}
}

// Power-up physics and effect tuning.
const (
	PowerUpSize      = 20.0
	PowerUpFallSpeed = 2.0

	paddleSizeFactor = 1.5
	slowBallFactor   = 0.7
)

// PowerUp is a falling bonus box released by a destroyed brick.
type PowerUp struct {
	Rect core.Rect
	Type PowerUpType
}

// NewPowerUp creates a power-up of the given type at (x, y).
func NewPowerUp(x, y float64, t PowerUpType) *PowerUp {
	return &PowerUp{
		Rect: core.NewRect(x, y, PowerUpSize, PowerUpSize),
		Type: t,
	}
}

// Move advances the power-up downward one tick.
func (p *PowerUp) Move() {
	p.Rect.Y += PowerUpFallSpeed
}

// ActiveEffect tracks the single currently running power-up effect.
// Activating a new power-up replaces the previous effect without
// reverting it first.
type ActiveEffect struct {
	Type      PowerUpType
	StartTick int
}
