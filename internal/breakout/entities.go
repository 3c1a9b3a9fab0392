// Package breakout implements the Breakout game core: entities, brick grid,
// power-up lifecycle, particle effects, scoring and the session state machine.
// The simulation runs in a fixed 800x600 pixel world; the platform layer
// projects it onto the terminal at render time.
package breakout

import (
	"github.com/avorobev/breakout-tui/internal/core"
)

// World dimensions in pixels.
const (
	WorldW = 800.0
	WorldH = 600.0
)

// Entity dimensions.
const (
	BallSize     = 20.0
	PaddleHeight = 10.0
	PaddleY      = 580.0
	TrailMax     = 20
)

// Ball is the bouncing ball with its velocity and particle trail.
type Ball struct {
	Rect   core.Rect
	DX, DY float64
	Trail  []*Particle
}

// NewBall creates a ball centered in the playfield moving up-right at the
// given speed per axis.
func NewBall(speed float64) *Ball {
	return &Ball{
		Rect: core.NewRect(WorldW/2-BallSize/2, WorldH/2-BallSize/2, BallSize, BallSize),
		DX:   speed,
		DY:   -speed,
	}
}

// Move advances the ball by its velocity and appends a trail particle at the
// current center, evicting the oldest when the trail is full.
func (b *Ball) Move(rng *Rand) {
	b.Trail = append(b.Trail, NewParticle(b.Rect.CenterX(), b.Rect.CenterY(), rng))
	if len(b.Trail) > TrailMax {
		b.Trail = b.Trail[1:]
	}

	b.Rect.X += b.DX
	b.Rect.Y += b.DY
}

// CollideWalls reflects the ball off the side and top walls.
// Returns true if any wall was hit.
func (b *Ball) CollideWalls() bool {
	hit := false
	if b.Rect.X <= 0 || b.Rect.Right() >= WorldW {
		b.DX = -b.DX
		hit = true
	}
	if b.Rect.Y <= 0 {
		b.DY = -b.DY
		hit = true
	}
	return hit
}

// Paddle is the player-controlled paddle. BaseWidth is the configured width
// that size power-ups scale from and revert to.
type Paddle struct {
	Rect      core.Rect
	BaseWidth float64
}

// NewPaddle creates a paddle of the given width centered near the bottom.
func NewPaddle(width float64) *Paddle {
	return &Paddle{
		Rect:      core.NewRect(WorldW/2-width/2, PaddleY, width, PaddleHeight),
		BaseWidth: width,
	}
}

// MoveBy shifts the paddle horizontally, clamped to the playfield.
func (p *Paddle) MoveBy(dx float64) {
	p.Rect.X = core.Clamp(p.Rect.X+dx, 0, WorldW-p.Rect.W)
}

// SetWidth changes the paddle width, keeping it inside the playfield.
func (p *Paddle) SetWidth(w float64) {
	p.Rect.W = w
	p.Rect.X = core.Clamp(p.Rect.X, 0, WorldW-p.Rect.W)
}

// Star is a decorative background star that drifts down and recycles to the
// top when it leaves the playfield.
type Star struct {
	X, Y  float64
	Size  int
	Speed float64
}

// NewStar creates a star at a random position.
func NewStar(rng *Rand) *Star {
	return &Star{
		X:     rng.FloatRange(0, WorldW),
		Y:     rng.FloatRange(0, WorldH),
		Size:  rng.IntRange(1, 3),
		Speed: rng.FloatRange(0.2, 1.0),
	}
}

// Update drifts the star downward, recycling it above the playfield once it
// falls off the bottom.
func (s *Star) Update(rng *Rand) {
	s.Y += s.Speed
	if s.Y > WorldH {
		s.Y = 0
		s.X = rng.FloatRange(0, WorldW)
	}
}
