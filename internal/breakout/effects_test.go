package breakout

import (
	"testing"

	"github.com/avorobev/breakout-tui/internal/core"
)

func TestParticleAgesToRed(t *testing.T) {
	rng := NewRand(3)
	p := NewParticle(100, 100, rng)

	for i := 0; i < 40; i++ {
		p.Update()
	}
	if p.R != 255 {
		t.Errorf("R = %d, want 255", p.R)
	}
	if p.G != 0 {
		t.Errorf("G = %d, want 0", p.G)
	}
}

func TestParticleDiesWithinLifetime(t *testing.T) {
	rng := NewRand(3)
	p := NewParticle(100, 100, rng)

	for i := 0; i < particleLifetime; i++ {
		p.Update()
	}
	if p.Alive() {
		t.Errorf("particle alive after %d ticks: size=%v lifetime=%d", particleLifetime, p.Size, p.Lifetime)
	}
}

func TestUpdateParticlesFiltersDead(t *testing.T) {
	rng := NewRand(5)
	var ps []*Particle
	ps = SpawnBurst(ps, 400, 300, rng)
	if len(ps) != burstCount {
		t.Fatalf("burst = %d, want %d", len(ps), burstCount)
	}

	// Kill half up front
	for i := 0; i < burstCount/2; i++ {
		ps[i].Lifetime = 1
	}

	ps = UpdateParticles(ps)
	if len(ps) != burstCount/2 {
		t.Errorf("after update = %d, want %d", len(ps), burstCount/2)
	}
	for _, p := range ps {
		if !p.Alive() {
			t.Error("dead particle kept")
		}
	}
}

func TestFragmentDecays(t *testing.T) {
	rng := NewRand(11)
	b := &Brick{Rect: core.NewRect(10, 10, BrickW, BrickH)}
	f := NewFragment(b, rng)

	if f.W < BrickW/4 || f.W > BrickW/2 {
		t.Errorf("width = %v, want within [%v, %v]", f.W, BrickW/4, BrickW/2)
	}
	if f.VY < 1 || f.VY > 3 {
		t.Errorf("vy = %v, want within [1, 3]", f.VY)
	}

	// Worst case: largest size, slowest decay
	for i := 0; i < int(BrickW/2/0.05)+1; i++ {
		f.Update()
	}
	if f.Alive() {
		t.Errorf("fragment alive after full decay: w=%v h=%v", f.W, f.H)
	}
}

func TestSpawnFragmentsCount(t *testing.T) {
	rng := NewRand(21)
	b := &Brick{Rect: core.NewRect(10, 10, BrickW, BrickH)}

	for i := 0; i < 20; i++ {
		fs := SpawnFragments(nil, b, rng)
		if len(fs) < 4 || len(fs) > 10 {
			t.Fatalf("fragments = %d, want 4..10", len(fs))
		}
	}
}

func TestUpdateFragmentsFiltersDead(t *testing.T) {
	rng := NewRand(31)
	b := &Brick{Rect: core.NewRect(10, 10, BrickW, BrickH)}
	fs := SpawnFragments(nil, b, rng)

	fs[0].W = 0.01
	fs[0].Decay = 1

	got := UpdateFragments(fs)
	for _, f := range got {
		if !f.Alive() {
			t.Error("dead fragment kept")
		}
	}
}
