package generator

import (
	"context"
	"image"
	"testing"

	"github.com/milk9111/bossforge/physics"
	"github.com/milk9111/bossforge/prefabs"
)

// testCatalog loads the embedded tables and shrinks the canvas so runs stay fast.
func testCatalog(t *testing.T) *prefabs.Catalog {
	t.Helper()
	prefabs.SetDir("")
	t.Cleanup(func() { prefabs.SetDir("prefabs") })

	c, err := prefabs.LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	g := &c.Generator
	g.MaxBossWidth = 120
	g.MaxBossHeight = 120
	g.WeaponXLimit = 40
	g.WeaponYLimit = 40
	g.WeaponReach = 20
	for i := range c.Weapons {
		c.Weapons[i].Width = max(c.Weapons[i].Width/4, 4)
		c.Weapons[i].Height = max(c.Weapons[i].Height/4, 4)
	}
	return c
}

// singleWeaponCatalog keeps one weapon archetype that every boss type can wield in any
// orientation, so type and orientation picks practically never run out of attempts.
func singleWeaponCatalog(t *testing.T) *prefabs.Catalog {
	t.Helper()
	c := testCatalog(t)
	w := c.Weapons[0]
	w.WieldableBy = prefabs.NewBossTypeSet(prefabs.Rocketship, prefabs.FlyingSaucer, prefabs.Starfighter, prefabs.SpaceBattleship, prefabs.AstroMonster)
	w.Orientations = prefabs.NewOrientationSet(prefabs.FixedForward, prefabs.FixedSideways, prefabs.FixedObliqueForward, prefabs.FixedOblique, prefabs.Rotatable, prefabs.NonOriented)
	w.CanFloat = false
	c.Weapons = []prefabs.WeaponTypeSpec{w}
	c.Generator.Attempts.WeaponType = 50
	c.Generator.Attempts.WeaponOrientation = 50
	return c
}

// fakeOracle answers every placement question the same way.
type fakeOracle struct {
	hit     bool
	overlap bool

	bodies   int
	raycasts int
	added    int
	cleared  int
}

func (f *fakeOracle) SetBody(image.Image) error {
	f.bodies++
	return nil
}

func (f *fakeOracle) RaycastHitsBody(Vec2, Vec2) bool {
	f.raycasts++
	return f.hit
}

func (f *fakeOracle) Overlaps(Bounds) bool { return f.overlap }

func (f *fakeOracle) AddWeapon(Bounds) { f.added++ }

func (f *fakeOracle) Clear() { f.cleared++ }

func newPipeline(t *testing.T, c *prefabs.Catalog, oracle CollisionOracle, seed int64, bt prefabs.BossTypeName) *Pipeline {
	t.Helper()
	if oracle == nil {
		oracle = physics.NewWorld(2)
	}
	p, err := New(Options{Catalog: c, Oracle: oracle, Seed: seed, BossType: bt})
	if err != nil {
		t.Fatalf("new pipeline: %v", err)
	}
	return p
}

func generate(t *testing.T, p *Pipeline, useNewSeed bool) *BossSpec {
	t.Helper()
	spec, err := p.GenerateBossFight(context.Background(), useNewSeed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := spec.Validate(); err != nil {
		t.Fatalf("invalid spec: %v", err)
	}
	return spec
}
