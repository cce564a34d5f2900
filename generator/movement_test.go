package generator

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMovementDestination(t *testing.T) {
	start := Vec2{X: 100, Y: 50}
	points := []Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}

	tests := []struct {
		name    string
		pattern MovementPattern
		i       int
		pick    func(int) int
		want    Vec2
	}{
		{"first point", MovementPattern{Points: points}, 0, nil, Vec2{X: 1, Y: 2}},
		{"cycles", MovementPattern{Points: points}, 3, nil, Vec2{X: 3, Y: 4}},
		{"negative index wraps", MovementPattern{Points: points}, -1, nil, Vec2{X: 3, Y: 4}},
		{"start point last", MovementPattern{Points: points, IncludeStartPoint: true}, 2, nil, start},
		{"constrain x", MovementPattern{Points: points, ConstrainX: true}, 1, nil, Vec2{X: 100, Y: 4}},
		{"constrain y", MovementPattern{Points: points, ConstrainY: true}, 0, nil, Vec2{X: 1, Y: 50}},
		{"random order", MovementPattern{Points: points, RandomOrder: true}, 0, func(int) int { return 1 }, Vec2{X: 3, Y: 4}},
		{"random pick clamped", MovementPattern{Points: points, RandomOrder: true}, 0, func(n int) int { return n + 5 }, Vec2{X: 3, Y: 4}},
		{"no points", MovementPattern{}, 4, nil, start},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pattern.Destination(tt.i, start, tt.pick)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected destination (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovementTween(t *testing.T) {
	m := MovementPattern{VelocityCurve: "Linear"}
	motion, err := m.Tween(Vec2{}, Vec2{X: 10, Y: 20}, 1)
	if err != nil {
		t.Fatalf("tween: %v", err)
	}

	pos, done := motion.Update(0.5)
	if done {
		t.Fatalf("motion finished early")
	}
	if math.Abs(pos.X-5) > 1e-4 || math.Abs(pos.Y-10) > 1e-4 {
		t.Fatalf("expected (5,10) halfway, got %+v", pos)
	}

	pos, done = motion.Update(0.5)
	if !done {
		t.Fatalf("expected motion to finish")
	}
	if math.Abs(pos.X-10) > 1e-4 || math.Abs(pos.Y-20) > 1e-4 {
		t.Fatalf("expected (10,20) at the end, got %+v", pos)
	}
}

func TestMovementTweenUnknownCurve(t *testing.T) {
	_, err := MovementPattern{VelocityCurve: "Wobble"}.Tween(Vec2{}, Vec2{X: 1}, 1)
	if !errors.Is(err, ErrUnknownVelocityCurve) {
		t.Fatalf("expected ErrUnknownVelocityCurve, got %v", err)
	}
}

func TestVelocityCurvesSorted(t *testing.T) {
	names := VelocityCurves()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("velocity curves not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestGeneratedMovementPatterns(t *testing.T) {
	c := testCatalog(t)
	ms := c.Generator.Movement
	valid := map[string]bool{}
	for _, name := range ms.VelocityCurves {
		valid[name] = true
	}

	for seed := int64(0); seed < 10; seed++ {
		spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, seed, 0), false)
		n := len(spec.MovementPatterns)
		if n < ms.QuantityMin || n >= max(ms.QuantityMax, ms.QuantityMin+1) {
			t.Fatalf("seed %d: %d movement patterns outside [%d,%d)", seed, n, ms.QuantityMin, ms.QuantityMax)
		}
		for i, m := range spec.MovementPatterns {
			if !valid[m.VelocityCurve] {
				t.Fatalf("seed %d: pattern %d uses unlisted curve %q", seed, i, m.VelocityCurve)
			}
			if len(m.Points) < ms.PointCountMin || len(m.Points) >= max(ms.PointCountMax, ms.PointCountMin+1) {
				t.Fatalf("seed %d: pattern %d has %d points", seed, i, len(m.Points))
			}
			for _, pt := range m.Points {
				if pt.X < float64(ms.XMin) || pt.X >= float64(ms.XMax) || pt.Y < float64(ms.YMin) || pt.Y >= float64(ms.YMax) {
					t.Fatalf("seed %d: pattern %d point %+v out of bounds", seed, i, pt)
				}
			}
		}
	}
}
