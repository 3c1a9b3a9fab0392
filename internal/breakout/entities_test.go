package breakout

import (
	"testing"
)

func TestBallSpawnsCentered(t *testing.T) {
	b := NewBall(5)

	if b.Rect.X != WorldW/2-BallSize/2 || b.Rect.Y != WorldH/2-BallSize/2 {
		t.Errorf("spawn = (%v, %v), want centered", b.Rect.X, b.Rect.Y)
	}
	if b.DX != 5 || b.DY != -5 {
		t.Errorf("velocity = (%v, %v), want (5, -5)", b.DX, b.DY)
	}
}

func TestBallTrailBounded(t *testing.T) {
	rng := NewRand(1)
	b := NewBall(5)
	b.DX = 0
	b.DY = 0

	for i := 0; i < TrailMax*3; i++ {
		b.Move(rng)
	}
	if len(b.Trail) != TrailMax {
		t.Errorf("trail = %d, want %d", len(b.Trail), TrailMax)
	}
}

func TestBallWallReflection(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		dx, dy   float64
		wantDX   float64
		wantDY   float64
		wantHit  bool
	}{
		{"left wall", -1, 300, -5, -5, 5, -5, true},
		{"left wall touching", 0, 300, -5, -5, 5, -5, true},
		{"right wall", WorldW - BallSize + 1, 300, 5, -5, -5, -5, true},
		{"top wall", 400, -1, 5, -5, 5, 5, true},
		{"top wall touching", 400, 0, 5, -5, 5, 5, true},
		{"open field", 400, 300, 5, -5, 5, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(5)
			b.Rect.X = tt.x
			b.Rect.Y = tt.y
			b.DX = tt.dx
			b.DY = tt.dy

			hit := b.CollideWalls()
			if hit != tt.wantHit {
				t.Errorf("hit = %v, want %v", hit, tt.wantHit)
			}
			if b.DX != tt.wantDX || b.DY != tt.wantDY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", b.DX, b.DY, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestPaddleClamping(t *testing.T) {
	p := NewPaddle(100)

	p.MoveBy(-1e6)
	if p.Rect.X != 0 {
		t.Errorf("left clamp: x = %v, want 0", p.Rect.X)
	}

	p.MoveBy(1e6)
	if p.Rect.X != WorldW-100 {
		t.Errorf("right clamp: x = %v, want %v", p.Rect.X, WorldW-100.0)
	}
}

func TestPaddleSetWidthReclamps(t *testing.T) {
	p := NewPaddle(100)
	p.Rect.X = WorldW - 100

	p.SetWidth(150)
	if p.Rect.X != WorldW-150 {
		t.Errorf("x after widen at edge = %v, want %v", p.Rect.X, WorldW-150.0)
	}
	if p.BaseWidth != 100 {
		t.Errorf("base width = %v, want 100 (unchanged)", p.BaseWidth)
	}
}

func TestStarRecycles(t *testing.T) {
	rng := NewRand(7)
	s := NewStar(rng)
	s.Y = WorldH - 0.1
	s.Speed = 1

	s.Update(rng)
	if s.Y != 0 {
		t.Errorf("y after recycle = %v, want 0", s.Y)
	}
	if s.X < 0 || s.X > WorldW {
		t.Errorf("recycled x = %v out of range", s.X)
	}
}

func TestStarBoundsOnSpawn(t *testing.T) {
	rng := NewRand(99)
	for i := 0; i < 50; i++ {
		s := NewStar(rng)
		if s.X < 0 || s.X > WorldW || s.Y < 0 || s.Y > WorldH {
			t.Fatalf("star %d at (%v, %v) out of world", i, s.X, s.Y)
		}
		if s.Size < 1 || s.Size > 3 {
			t.Fatalf("star %d size = %d, want 1..3", i, s.Size)
		}
		if s.Speed < 0.2 || s.Speed > 1.0 {
			t.Fatalf("star %d speed = %v, want 0.2..1.0", i, s.Speed)
		}
	}
}
