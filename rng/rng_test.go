package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 200; i++ {
		x, y := a.Int(-50, 50), b.Int(-50, 50)
		if x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestReseedReplays(t *testing.T) {
	s := New(7)
	first := []int{s.Int(0, 1000), s.Int(0, 1000), s.Int(0, 1000)}
	s.Int(0, 10)
	s.Reseed(7)
	for i, want := range first {
		if got := s.Int(0, 1000); got != want {
			t.Fatalf("draw %d after reseed: expected %d, got %d", i, want, got)
		}
	}
}

func TestIntRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"positive", 2, 5},
		{"negative", -180, 180},
		{"single", 3, 4},
	}
	s := New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				v := s.Int(tt.min, tt.max)
				if v < tt.min || v >= tt.max {
					t.Fatalf("value %d outside [%d,%d)", v, tt.min, tt.max)
				}
			}
		})
	}
}

func TestIntDegenerateRange(t *testing.T) {
	s := New(1)
	if got := s.Int(5, 5); got != 5 {
		t.Fatalf("empty range: expected 5, got %d", got)
	}
	if got := s.Int(5, 2); got != 5 {
		t.Fatalf("inverted range: expected 5, got %d", got)
	}
}

func TestPickCoversAllIndices(t *testing.T) {
	s := New(3)
	seen := make([]bool, 6)
	for i := 0; i < 1000; i++ {
		idx := s.Pick(6, 100)
		if idx < 0 || idx >= 6 {
			t.Fatalf("index %d out of range", idx)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d never picked", i)
		}
	}
	if got := s.Pick(0, 100); got != -1 {
		t.Fatalf("empty pick: expected -1, got %d", got)
	}
}

func TestChanceExtremes(t *testing.T) {
	s := New(9)
	for i := 0; i < 100; i++ {
		if s.Chance(0, 100) {
			t.Fatalf("chance 0 succeeded")
		}
		if !s.Chance(1, 100) {
			t.Fatalf("chance 1 failed")
		}
	}
}
