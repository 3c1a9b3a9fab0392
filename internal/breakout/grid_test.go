package breakout

import (
	"testing"
)

func TestGenerateGridLayout(t *testing.T) {
	rng := NewRand(1)
	bricks := GenerateGrid(5, 10, 0, rng)

	if len(bricks) != 50 {
		t.Fatalf("bricks = %d, want 50", len(bricks))
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 10; col++ {
			b := bricks[row*10+col]
			wantX := GridOriginX + float64(col)*GridPitchX
			wantY := GridOriginY + float64(row)*GridPitchY
			if b.Rect.X != wantX || b.Rect.Y != wantY {
				t.Fatalf("brick (%d,%d) at (%v, %v), want (%v, %v)", row, col, b.Rect.X, b.Rect.Y, wantX, wantY)
			}
			if b.Rect.W != BrickW || b.Rect.H != BrickH {
				t.Fatalf("brick (%d,%d) size (%v, %v), want (%v, %v)", row, col, b.Rect.W, b.Rect.H, BrickW, BrickH)
			}
		}
	}

	// Last column fits inside the world
	last := bricks[9]
	if last.Rect.Right() > WorldW {
		t.Errorf("last brick right edge = %v, beyond world %v", last.Rect.Right(), WorldW)
	}
}

func TestGenerateGridPowerUpChance(t *testing.T) {
	rng := NewRand(42)

	for _, b := range GenerateGrid(5, 10, 0, rng) {
		if b.PowerUp != PowerUpNone {
			t.Fatal("chance 0 produced a power-up brick")
		}
	}

	types := make(map[PowerUpType]int)
	for _, b := range GenerateGrid(10, 10, 1, rng) {
		if b.PowerUp == PowerUpNone {
			t.Fatal("chance 1 produced a plain brick")
		}
		types[b.PowerUp]++
	}
	// All three types should show up across 100 guaranteed drops
	for _, pt := range powerUpTypes {
		if types[pt] == 0 {
			t.Errorf("type %v never chosen", pt)
		}
	}
}

func TestGenerateGridPowerUpProbability(t *testing.T) {
	rng := NewRand(9001)

	const grids = 200
	total, tagged := 0, 0
	types := make(map[PowerUpType]int)
	for i := 0; i < grids; i++ {
		for _, b := range GenerateGrid(10, 10, 0.2, rng) {
			total++
			if b.PowerUp != PowerUpNone {
				tagged++
				types[b.PowerUp]++
			}
		}
	}

	// 20k bricks at chance 0.2: the sample fraction should sit well inside
	// a generous band around the configured chance
	frac := float64(tagged) / float64(total)
	if frac < 0.17 || frac > 0.23 {
		t.Errorf("tagged fraction = %.3f over %d bricks, want ~0.2", frac, total)
	}

	// Type selection is uniform over the three droppable types
	for _, pt := range powerUpTypes {
		share := float64(types[pt]) / float64(tagged)
		if share < 0.25 || share > 0.42 {
			t.Errorf("type %v share = %.3f, want ~1/3", pt, share)
		}
	}
}
