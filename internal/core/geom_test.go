package core

import (
	"testing"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 20, 20)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(15, 15, 20, 20), true},
		{"contained", NewRect(12, 12, 5, 5), true},
		{"containing", NewRect(0, 0, 100, 100), true},
		{"identical", NewRect(10, 10, 20, 20), true},
		{"touching right edge", NewRect(30, 10, 20, 20), true},
		{"touching bottom edge", NewRect(10, 30, 20, 20), true},
		{"touching corner", NewRect(30, 30, 20, 20), true},
		{"separated right", NewRect(31, 10, 20, 20), false},
		{"separated left", NewRect(-20, 10, 29, 20), false},
		{"separated below", NewRect(10, 31, 20, 20), false},
		{"separated above", NewRect(10, -20, 20, 29), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom = %v, want 60", r.Bottom())
	}
	if r.CenterX() != 25 {
		t.Errorf("CenterX = %v, want 25", r.CenterX())
	}
	if r.CenterY() != 40 {
		t.Errorf("CenterY = %v, want 40", r.CenterY())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !r.Contains(15, 15) {
		t.Error("interior point not contained")
	}
	if !r.Contains(10, 10) || !r.Contains(30, 30) {
		t.Error("boundary points not contained")
	}
	if r.Contains(31, 15) || r.Contains(15, 9) {
		t.Error("exterior point contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %v, want 10", got)
	}

	if got := ClampInt(7, 1, 5); got != 5 {
		t.Errorf("ClampInt(7, 1, 5) = %d, want 5", got)
	}
	if got := ClampInt(-3, 1, 5); got != 1 {
		t.Errorf("ClampInt(-3, 1, 5) = %d, want 1", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min broken")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max broken")
	}
}
