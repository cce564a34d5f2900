package common

import (
	"math"
	"testing"
)

func TestSign(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-3, -1},
		{-0.1, -1},
		{0, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Sign(tt.in); got != tt.want {
			t.Fatalf("Sign(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestWrap01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Wrap01(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Wrap01(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRotatedBounds(t *testing.T) {
	w, h := RotatedBounds(10, 4, 90)
	if math.Abs(w-4) > 1e-9 || math.Abs(h-10) > 1e-9 {
		t.Fatalf("90 degrees: expected 4x10, got %vx%v", w, h)
	}
	w, h = RotatedBounds(10, 10, 45)
	want := 10 * math.Sqrt2
	if math.Abs(w-want) > 1e-9 || math.Abs(h-want) > 1e-9 {
		t.Fatalf("45 degrees: expected %v, got %vx%v", want, w, h)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := ClampInt(-2, 0, 3); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Round(-2.5); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
}

func TestBoundsIntersects(t *testing.T) {
	a := BoundsAround(Vec2{X: 0, Y: 0}, 10, 10)
	tests := []struct {
		name string
		b    Bounds
		want bool
	}{
		{"same", a, true},
		{"overlapping", BoundsAround(Vec2{X: 8, Y: 0}, 10, 10), true},
		{"touching", BoundsAround(Vec2{X: 10, Y: 0}, 10, 10), false},
		{"apart", BoundsAround(Vec2{X: 0, Y: 30}, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
	if c := a.Center(); c != (Vec2{}) {
		t.Fatalf("expected centre at origin, got %+v", c)
	}
}
