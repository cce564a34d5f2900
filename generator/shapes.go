package generator

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/milk9111/bossforge/common"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/raster"
	"github.com/milk9111/bossforge/symmetry"
)

// textureScale leaves a margin around the body for outlines and overhanging shapes.
const textureScale = 1.25

var bodyColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type canvasLayout struct {
	width, height    int
	offsetX, offsetY int
}

func layoutFor(gen prefabs.GeneratorSpec) canvasLayout {
	w := int(float64(gen.MaxBossWidth) * textureScale)
	h := int(float64(gen.MaxBossHeight) * textureScale)
	return canvasLayout{
		width:   w,
		height:  h,
		offsetX: (w - gen.MaxBossWidth) / 2,
		offsetY: (h - gen.MaxBossHeight) / 2,
	}
}

// drawCurve evaluates curve at a draw over [0, scale).
func (p *Pipeline) drawCurve(curve *prefabs.Curve, scale int) (float64, error) {
	t := 0.0
	if scale > 0 {
		t = float64(p.rng.Value(scale)) / float64(scale)
	}
	return curve.Evaluate(t)
}

func (p *Pipeline) generateSprite(ctx context.Context) error {
	gen := p.catalog.Generator
	bt := p.bossTable
	if bt.ComplexityCurve.Empty() {
		return &ConfigError{Stage: SpriteGen, Detail: fmt.Sprintf("%s complexity curve", bt.Name), Err: ErrMissingCurve}
	}

	layout := layoutFor(gen)
	canvas := image.NewNRGBA(image.Rect(0, 0, layout.width, layout.height))
	p.spec.TextureWidth = layout.width
	p.spec.TextureHeight = layout.height
	p.spec.Sprite = canvas

	v, err := p.drawCurve(&bt.ComplexityCurve, gen.Scales.ShapeComplexity)
	if err != nil {
		return fmt.Errorf("generator: complexity curve: %w", err)
	}
	complexity := max(common.Round(v), 1)

	for i := 0; i < complexity; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		placements := p.placeShape(layout)
		for _, sp := range placements {
			if err := p.stampShape(canvas, sp); err != nil {
				return err
			}
		}
		p.spec.Shapes = append(p.spec.Shapes, placements...)
		p.sink.Observe(SpriteGen, p.spec)
	}

	p.spec.Pattern = Pattern{
		ScaleX: float64(p.rng.Int(gen.Scales.PerlinScaleMin, gen.Scales.PerlinScaleMax)),
		ScaleY: float64(p.rng.Int(gen.Scales.PerlinScaleMin, gen.Scales.PerlinScaleMax)),
	}
	symmetryMax := gen.Scales.Symmetry
	draw := p.rng.Value(symmetryMax)
	p.spec.Pattern.Symmetric = float64(draw)/float64(symmetryMax) > gen.AsymmetricPatternChance
	p.spec.Pattern.NoiseSeed = p.rng.Int63()

	raster.Wash{
		Seed:      p.spec.Pattern.NoiseSeed,
		ScaleX:    p.spec.Pattern.ScaleX,
		ScaleY:    p.spec.Pattern.ScaleY,
		Symmetric: p.spec.Pattern.Symmetric,
	}.Apply(canvas, p.spec.Palette.NRGBA())

	p.spec.Sprite = raster.Outline(canvas, p.outlinePasses()...)
	return nil
}

// placeShape draws one shape's parameters. A mirrored shape returns its twin first so
// that the twin is drawn underneath.
func (p *Pipeline) placeShape(layout canvasLayout) []ShapePlacement {
	gen := p.catalog.Generator
	shapes := p.catalog.Shapes

	v := p.rng.Value(gen.Scales.Symmetry)
	st := shapes[p.rng.Pick(len(shapes), gen.Scales.Shape)]

	maxW, maxH := gen.MaxBossWidth, gen.MaxBossHeight
	w := p.rng.Int(maxW/gen.MinShapeFraction, int(float64(maxW)*gen.ShapeSizeLimiter))
	h := w
	if st.TwoDimensionSize {
		h = p.rng.Int(maxH/gen.MinShapeFraction, int(float64(maxH)*gen.ShapeSizeLimiter))
	}

	rot := 0.0
	if st.GenerateRotation {
		rot = float64(p.rng.Int(-180, 180))
	}
	rw, rh := common.RotatedBounds(float64(w), float64(h), rot)
	halfW, halfH := int(math.Ceil(rw/2)), int(math.Ceil(rh/2))
	x := float64(p.rng.Int(layout.offsetX+halfW, maxW+layout.offsetX-halfW))
	y := float64(p.rng.Int(layout.offsetY+halfH, maxH+layout.offsetY-halfH))

	class := symmetry.ShapeClass(v, gen.Scales.Symmetry, st.Symmetry, p.bossTable.Multipliers)
	switch class {
	case symmetry.NormaliseRotation:
		if st.GenerateRotation {
			rot = normaliseRotation(rot, st.NearestSymmetricalRot)
		}
	case symmetry.CentreX:
		if st.GenerateRotation {
			rot = normaliseRotation(rot, st.NearestSymmetricalRot)
		} else {
			rot = 0
		}
		x = float64(layout.width) / 2
	}

	primary := ShapePlacement{
		Shape:    st.Name,
		Width:    w,
		Height:   h,
		ScaleX:   float64(w) / float64(maxW),
		ScaleY:   float64(h) / float64(maxH),
		Rotation: rot,
		X:        x,
		Y:        y,
		Symmetry: class,
	}
	if class != symmetry.Mirror {
		return []ShapePlacement{primary}
	}
	twin := primary
	twin.X = float64(layout.width) - x
	twin.Rotation = -rot
	twin.Mirrored = true
	return []ShapePlacement{twin, primary}
}

func (p *Pipeline) stampShape(canvas *image.NRGBA, sp ShapePlacement) error {
	mask, err := p.raster.Rasterize(sp.Shape, raster.Transform{
		X:        sp.X,
		Y:        sp.Y,
		Width:    float64(sp.Width),
		Height:   float64(sp.Height),
		Rotation: sp.Rotation,
		FlipX:    sp.Mirrored,
	})
	if err != nil {
		return fmt.Errorf("generator: rasterize %s: %w", sp.Shape, err)
	}
	raster.Composite(canvas, mask, bodyColor)
	return nil
}

func (p *Pipeline) outlinePasses() []raster.OutlinePass {
	passes := make([]raster.OutlinePass, 0, len(p.catalog.Generator.Outlines))
	for _, o := range p.catalog.Generator.Outlines {
		passes = append(passes, raster.OutlinePass{
			Color:     o.Color.NRGBA(color.NRGBA{A: 255}),
			Thickness: o.Thickness,
		})
	}
	return passes
}

// normaliseRotation snaps r to the nearest multiple of n, keeping its sign.
func normaliseRotation(r, n float64) float64 {
	if n <= 0 {
		return r
	}
	return math.Round(math.Abs(r)/n) * n * common.Sign(r)
}
