package palette

import (
	"math"
	"testing"

	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/rng"
)

func testGenerator() prefabs.GeneratorSpec {
	return prefabs.GeneratorSpec{
		Scales:                        prefabs.ScalesSpec{Symmetry: 100},
		NonComplementaryColorChance:   0.5,
		WeaponBrightnessTintAmount:    0.3,
		WeaponBrightnessTintThreshold: 0.5,
	}
}

func TestGenerateColorCount(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		p := Generate(rng.New(seed), testGenerator())
		if n := len(p.Colors); n < 2 || n > 4 {
			t.Fatalf("seed %d: expected 2-4 colours, got %d", seed, n)
		}
		for i, c := range p.Colors {
			if c.H < 0 || c.H >= 1 || c.S < 0 || c.S > 1 || c.V < 0 || c.V > 1 {
				t.Fatalf("seed %d colour %d out of range: %+v", seed, i, c)
			}
		}
		if p.Background.OffsetX < -1 || p.Background.OffsetX >= 1 {
			t.Fatalf("seed %d: background offset %v out of range", seed, p.Background.OffsetX)
		}
	}
}

func TestComplementaryOffsets(t *testing.T) {
	gen := testGenerator()
	gen.NonComplementaryColorChance = -1

	seenTwo, seenMore := false, false
	for seed := int64(0); seed < 100; seed++ {
		p := Generate(rng.New(seed), gen)
		if !p.Complementary {
			t.Fatalf("seed %d: expected complementary scheme", seed)
		}
		base := p.Colors[0]
		for i := 1; i < len(p.Colors) && i <= 2; i++ {
			want := math.Mod(base.H+complementOffset(i, len(p.Colors)), 1)
			if math.Abs(p.Colors[i].H-want) > 1e-9 {
				t.Fatalf("seed %d colour %d: expected hue %v, got %v", seed, i, want, p.Colors[i].H)
			}
			if p.Colors[i].S != base.S || p.Colors[i].V != base.V {
				t.Fatalf("seed %d colour %d: expected base S/V kept", seed, i)
			}
		}
		if len(p.Colors) == 2 {
			seenTwo = true
		} else {
			seenMore = true
		}
	}
	if !seenTwo || !seenMore {
		t.Fatalf("expected both 2-colour and larger palettes across seeds")
	}
}

func TestNonComplementaryNeverOffsets(t *testing.T) {
	gen := testGenerator()
	gen.NonComplementaryColorChance = 2
	for seed := int64(0); seed < 50; seed++ {
		if p := Generate(rng.New(seed), gen); p.Complementary {
			t.Fatalf("seed %d: expected non-complementary scheme", seed)
		}
	}
}

func TestTint(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"bright gets darker", 0.8, 0.5},
		{"dark gets lighter", 0.2, 0.5},
		{"threshold gets lighter", 0.5, 0.8},
		{"very dark gets lighter", 0.1, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tint(HSV{H: 0.3, S: 0.6, V: tt.v}, 0.3, 0.5)
			if math.Abs(got.V-tt.want) > 1e-9 {
				t.Fatalf("expected V %v, got %v", tt.want, got.V)
			}
			if got.H != 0.3 || got.S != 0.6 {
				t.Fatalf("expected hue and saturation kept, got %+v", got)
			}
		})
	}
	if got := Tint(HSV{V: 0.9}, 0.5, 0.95); got.V != 1 {
		t.Fatalf("expected clamp to 1, got %v", got.V)
	}
}

func TestBackgroundFromScheme(t *testing.T) {
	gen := testGenerator()
	gen.UseColorSchemeForBackground = true
	for seed := int64(0); seed < 50; seed++ {
		p := Generate(rng.New(seed), gen)
		found := false
		for _, c := range p.NRGBA() {
			if c == p.Background.Color {
				found = true
			}
		}
		if !found {
			t.Fatalf("seed %d: background %v not in palette", seed, p.Background.Color)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rng.New(11), testGenerator())
	b := Generate(rng.New(11), testGenerator())
	if len(a.Colors) != len(b.Colors) || a.Background != b.Background || a.WeaponTint != b.WeaponTint {
		t.Fatalf("palettes differ for the same seed")
	}
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			t.Fatalf("colour %d differs", i)
		}
	}
}
