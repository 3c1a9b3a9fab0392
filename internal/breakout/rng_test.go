package breakout

import (
	"testing"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(1234)
	b := NewRand(1234)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequence diverged at step %d", i)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	same := 0
	for i := 0; i < 20; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandIntnBounds(t *testing.T) {
	r := NewRand(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d out of range", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("Intn(10) covered %d values over 1000 draws, want all 10", len(seen))
	}
}

func TestRandIntRangeInclusive(t *testing.T) {
	r := NewRand(7)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.IntRange(4, 10)
		if v < 4 || v > 10 {
			t.Fatalf("IntRange(4, 10) = %d out of range", v)
		}
		seen[v] = true
	}
	if !seen[4] || !seen[10] {
		t.Error("IntRange endpoints never drawn")
	}
}

func TestRandFloatBounds(t *testing.T) {
	r := NewRand(7)

	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 = %v out of [0, 1)", v)
		}
		if v := r.FloatRange(-1.5, 1.5); v < -1.5 || v >= 1.5 {
			t.Fatalf("FloatRange = %v out of [-1.5, 1.5)", v)
		}
	}
}
