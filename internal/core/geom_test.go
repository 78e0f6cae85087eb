package core

import (
	"math"
	"testing"
)

func TestFRectIntersects(t *testing.T) {
	a := NewFRect(0, 0, 10, 5)

	tests := []struct {
		name string
		b    FRect
		want bool
	}{
		{"overlapping", NewFRect(5, 2, 10, 5), true},
		{"contained", NewFRect(2, 1, 3, 2), true},
		{"touching right edge", NewFRect(10, 0, 5, 5), false},
		{"touching bottom edge", NewFRect(0, 5, 10, 5), false},
		{"disjoint", NewFRect(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestFRectOverlapsCircle(t *testing.T) {
	r := NewFRect(10, 10, 4, 2)

	// Center inside
	if !r.OverlapsCircle(12, 11, 0.5) {
		t.Error("circle centered inside rect should overlap")
	}

	// Just outside left edge, within radius
	if !r.OverlapsCircle(9.6, 11, 0.5) {
		t.Error("circle touching left edge should overlap")
	}

	// Outside beyond radius
	if r.OverlapsCircle(9.0, 11, 0.5) {
		t.Error("circle a full diameter away should not overlap")
	}

	// Above the rect, within radius
	if !r.OverlapsCircle(12, 9.6, 0.5) {
		t.Error("circle touching top edge should overlap")
	}
}

func TestFRectInflate(t *testing.T) {
	r := NewFRect(10, 10, 4, 2).Inflate(1, 0.5)
	if r.X != 9 || r.Y != 9.5 || r.W != 6 || r.H != 3 {
		t.Errorf("Inflate produced %+v", r)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, want 5", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d, want 10", got)
	}

	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, want 0.5", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, want 0", got)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1.5) {
		t.Error("1.5 should be finite")
	}
	if Finite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if Finite(math.Inf(1)) {
		t.Error("+Inf should not be finite")
	}
	if Finite(math.Inf(-1)) {
		t.Error("-Inf should not be finite")
	}
}
