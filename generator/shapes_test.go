package generator

import (
	"testing"

	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/symmetry"
)

func TestNormaliseRotation(t *testing.T) {
	tests := []struct {
		r, n, want float64
	}{
		{100, 90, 90},
		{-100, 90, -90},
		{136, 90, 180},
		{-44, 90, -0},
		{37, 72, 72},
		{37, 0, 37},
	}
	for _, tt := range tests {
		if got := normaliseRotation(tt.r, tt.n); got != tt.want {
			t.Fatalf("normaliseRotation(%v, %v): expected %v, got %v", tt.r, tt.n, tt.want, got)
		}
	}
}

func TestMirroredShapesDrawTwinFirst(t *testing.T) {
	c := testCatalog(t)
	for i := range c.Shapes {
		c.Shapes[i].Symmetry = prefabs.ShapeSymmetry{Mirror: 1}
	}
	spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, 21, prefabs.Starfighter), false)

	if len(spec.Shapes) == 0 || len(spec.Shapes)%2 != 0 {
		t.Fatalf("expected mirrored pairs, got %d shapes", len(spec.Shapes))
	}
	for i := 0; i < len(spec.Shapes); i += 2 {
		twin, primary := spec.Shapes[i], spec.Shapes[i+1]
		if !twin.Mirrored || primary.Mirrored {
			t.Fatalf("pair %d: expected twin then primary", i/2)
		}
		if twin.X != float64(spec.TextureWidth)-primary.X || twin.Y != primary.Y {
			t.Fatalf("pair %d: twin at (%v,%v) does not mirror (%v,%v)", i/2, twin.X, twin.Y, primary.X, primary.Y)
		}
		if twin.Rotation != -primary.Rotation {
			t.Fatalf("pair %d: twin rotation %v, primary %v", i/2, twin.Rotation, primary.Rotation)
		}
		if primary.Symmetry != symmetry.Mirror {
			t.Fatalf("pair %d: expected Mirror class, got %s", i/2, primary.Symmetry)
		}
	}
}

func TestCentredShapes(t *testing.T) {
	c := testCatalog(t)
	for i := range c.Shapes {
		c.Shapes[i].Symmetry = prefabs.ShapeSymmetry{CentreX: 1}
	}
	spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, 4, prefabs.Rocketship), false)
	for i, s := range spec.Shapes {
		if s.X != float64(spec.TextureWidth)/2 {
			t.Fatalf("shape %d: expected x at the centre line, got %v", i, s.X)
		}
		st, _ := c.Shape(s.Shape)
		if !st.GenerateRotation && s.Rotation != 0 {
			t.Fatalf("shape %d: non-rotating shape rotated by %v", i, s.Rotation)
		}
	}
}

func TestSpriteIsOpaqueOrTransparent(t *testing.T) {
	c := testCatalog(t)
	spec := generate(t, newPipeline(t, c, &fakeOracle{hit: true}, 99, prefabs.AstroMonster), false)

	if spec.Sprite == nil {
		t.Fatalf("expected a sprite")
	}
	b := spec.Sprite.Bounds()
	if b.Dx() != spec.TextureWidth || b.Dy() != spec.TextureHeight {
		t.Fatalf("sprite %v does not match texture %dx%d", b, spec.TextureWidth, spec.TextureHeight)
	}
	solid := 0
	for i := 3; i < len(spec.Sprite.Pix); i += 4 {
		switch spec.Sprite.Pix[i] {
		case 0:
		case 255:
			solid++
		default:
			t.Fatalf("blended alpha %d in sprite", spec.Sprite.Pix[i])
		}
	}
	if solid == 0 {
		t.Fatalf("expected a visible body")
	}
	if spec.Pattern.ScaleX < float64(c.Generator.Scales.PerlinScaleMin) {
		t.Fatalf("pattern scale %v below minimum", spec.Pattern.ScaleX)
	}
}
