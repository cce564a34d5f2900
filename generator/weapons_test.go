package generator

import (
	"testing"

	"github.com/milk9111/bossforge/prefabs"
)

func TestRocketshipConstantWeaponQuantity(t *testing.T) {
	c := singleWeaponCatalog(t)
	bt, _ := c.BossType(prefabs.Rocketship)
	bt.WeaponQuantityCurve = prefabs.ConstantCurve(2)

	sawMirror := false
	for seed := int64(0); seed < 25; seed++ {
		spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, seed, prefabs.Rocketship), false)
		n := len(spec.Weapons)
		if n < 2 || n > 4 {
			t.Fatalf("seed %d: expected 2-4 weapons, got %d", seed, n)
		}
		mirrored := 0
		for _, w := range spec.Weapons {
			if w.MirrorOf >= 0 {
				mirrored++
			}
		}
		if mirrored%2 != 0 {
			t.Fatalf("seed %d: %d mirrored weapons, want an even count", seed, mirrored)
		}
		if mirrored > 0 {
			sawMirror = true
		}
	}
	if !sawMirror {
		t.Fatalf("expected at least one mirrored pair across seeds")
	}
}

func TestMirrorPairing(t *testing.T) {
	c := singleWeaponCatalog(t)
	c.Weapons[0].Symmetry = prefabs.WeaponSymmetry{Mirror: 1}
	bt, _ := c.BossType(prefabs.Starfighter)
	bt.WeaponQuantityCurve = prefabs.ConstantCurve(3)

	for seed := int64(0); seed < 10; seed++ {
		spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, seed, prefabs.Starfighter), false)
		if len(spec.Weapons) != 6 {
			t.Fatalf("seed %d: expected three pairs, got %d weapons", seed, len(spec.Weapons))
		}
		for i := 0; i < len(spec.Weapons); i += 2 {
			a, b := spec.Weapons[i], spec.Weapons[i+1]
			if a.MirrorOf != i+1 || b.MirrorOf != i {
				t.Fatalf("seed %d: weapons %d/%d not paired: %d, %d", seed, i, i+1, a.MirrorOf, b.MirrorOf)
			}
			if a.Sprite != b.Sprite {
				t.Fatalf("seed %d: twins must share a sprite", seed)
			}
			if a.Position.X == 0 {
				t.Fatalf("seed %d: mirrored weapon on the centre line", seed)
			}
			if a.Orientation.PositionDependent() && a.Rotation != -b.Rotation {
				t.Fatalf("seed %d: twin rotation %v is not the mirror of %v", seed, b.Rotation, a.Rotation)
			}
		}
	}
}

func TestCentredWeapons(t *testing.T) {
	c := singleWeaponCatalog(t)
	c.Weapons[0].Symmetry = prefabs.WeaponSymmetry{CentreX: 1}
	bt, _ := c.BossType(prefabs.SpaceBattleship)
	bt.WeaponQuantityCurve = prefabs.ConstantCurve(4)

	for seed := int64(0); seed < 10; seed++ {
		spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, seed, prefabs.SpaceBattleship), false)
		for i, w := range spec.Weapons {
			if !w.Centered || w.Position.X != 0 {
				t.Fatalf("seed %d weapon %d: expected centred at x=0, got %+v", seed, i, w.Position)
			}
			if w.Orientation.PositionDependent() {
				t.Fatalf("seed %d weapon %d: centred weapon got %s", seed, i, w.Orientation)
			}
			if w.MirrorOf != -1 {
				t.Fatalf("seed %d weapon %d: centred weapon has a twin", seed, i)
			}
		}
	}
}

func TestRejectingOracleTerminates(t *testing.T) {
	c := singleWeaponCatalog(t)
	bt, _ := c.BossType(prefabs.Rocketship)
	bt.WeaponQuantityCurve = prefabs.ConstantCurve(5)
	c.Generator.Attempts.WeaponPosition = 7

	oracle := &fakeOracle{hit: false}
	spec := generate(t, newPipeline(t, c, oracle, 3, prefabs.Rocketship), false)
	if len(spec.Weapons) != 0 {
		t.Fatalf("expected every weapon discarded, got %d", len(spec.Weapons))
	}
	if oracle.added != 0 {
		t.Fatalf("expected nothing registered with the oracle, got %d", oracle.added)
	}
	// Each slot gets at most attempts+1 position candidates.
	if oracle.raycasts == 0 || oracle.raycasts > 5*8 {
		t.Fatalf("unexpected raycast count %d", oracle.raycasts)
	}
	for _, a := range spec.Attacks {
		if a.Weapon != -1 {
			t.Fatalf("attack %s bound to a weapon that does not exist", a.Name)
		}
	}
}

func TestFloatingWeaponsSkipChecks(t *testing.T) {
	c := singleWeaponCatalog(t)
	c.Weapons[0].CanFloat = true
	bt, _ := c.BossType(prefabs.FlyingSaucer)
	bt.WeaponQuantityCurve = prefabs.ConstantCurve(3)

	oracle := &fakeOracle{hit: false, overlap: true}
	spec := generate(t, newPipeline(t, c, oracle, 8, prefabs.FlyingSaucer), false)
	if len(spec.Weapons) < 3 {
		t.Fatalf("expected floating weapons placed despite the oracle, got %d", len(spec.Weapons))
	}
	if oracle.raycasts != 0 {
		t.Fatalf("floating weapons must not query the oracle, got %d raycasts", oracle.raycasts)
	}
}

func TestBindRotation(t *testing.T) {
	tests := []struct {
		name      string
		mode      prefabs.OrientationMode
		magnitude float64
		x         float64
		want      float64
		tracks    bool
	}{
		{"forward", prefabs.FixedForward, 0, -10, 0, false},
		{"sideways left", prefabs.FixedSideways, 90, -10, -90, false},
		{"sideways right", prefabs.FixedSideways, 90, 10, 90, false},
		{"sideways centre counts as right", prefabs.FixedSideways, 90, 0, 90, false},
		{"oblique forward", prefabs.FixedObliqueForward, 45, -3, -45, false},
		{"oblique", prefabs.FixedOblique, 120, 3, 120, false},
		{"rotatable", prefabs.Rotatable, 0, 5, 0, true},
		{"non oriented", prefabs.NonOriented, 0, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tracks := bindRotation(tt.mode, tt.magnitude, tt.x)
			if got != tt.want || tracks != tt.tracks {
				t.Fatalf("expected (%v,%v), got (%v,%v)", tt.want, tt.tracks, got, tracks)
			}
		})
	}
}
