package generator

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/milk9111/bossforge/common"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/raster"
	"github.com/milk9111/bossforge/symmetry"
)

// mountDirection points from a weapon back into the hull it hangs from.
var mountDirection = Vec2{X: 0, Y: -1}

func (p *Pipeline) generateWeapons(ctx context.Context) error {
	gen := p.catalog.Generator
	bt := p.bossTable
	if bt.WeaponQuantityCurve.Empty() {
		return &ConfigError{Stage: WeaponGen, Detail: fmt.Sprintf("%s weapon quantity curve", bt.Name), Err: ErrMissingCurve}
	}

	v, err := p.drawCurve(&bt.WeaponQuantityCurve, gen.Scales.WeaponQuantity)
	if err != nil {
		return fmt.Errorf("generator: weapon quantity curve: %w", err)
	}
	quantity := max(common.Round(v), 0)

	for slot := 0; slot < quantity; slot++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.generateWeapon(slot); err != nil {
			return err
		}
		p.sink.Observe(WeaponGen, p.spec)
	}
	return nil
}

func (p *Pipeline) generateWeapon(slot int) error {
	gen := p.catalog.Generator
	v := p.rng.Value(gen.Scales.Symmetry)

	wt, ok := p.pickWeaponType()
	if !ok {
		log.Printf("generator: weapon %d: no type wieldable by %s after %d attempts", slot, p.spec.BossType, gen.Attempts.WeaponType)
		return nil
	}

	class := symmetry.Resolve(v, gen.Scales.Symmetry, symmetry.WeaponWeights(wt.Symmetry, p.bossTable.Multipliers)...)
	centred := class == symmetry.WeaponCentreX
	mirrored := class == symmetry.WeaponMirror

	mode, ok := p.pickOrientation(wt, centred)
	if !ok {
		log.Printf("generator: weapon %d (%s): no allowed orientation after %d attempts", slot, wt.Name, gen.Attempts.WeaponOrientation)
		return nil
	}

	pos, ok := p.placeWeapon(wt, centred, mirrored)
	if !ok {
		log.Printf("generator: weapon %d (%s): no free mount after %d attempts", slot, wt.Name, gen.Attempts.WeaponPosition+1)
		return nil
	}

	sprite, err := p.weaponSprite(wt)
	if err != nil {
		return err
	}

	primary := WeaponPlacement{
		Type:        wt.Name,
		Orientation: mode,
		Position:    pos,
		Width:       float64(wt.Width),
		Height:      float64(wt.Height),
		Centered:    centred,
		CanFloat:    wt.CanFloat,
		MirrorOf:    -1,
		Sprite:      sprite,
	}
	magnitude := p.rotationMagnitude(mode)
	primary.Rotation, primary.TracksTarget = bindRotation(mode, magnitude, pos.X)

	idx := len(p.spec.Weapons)
	p.spec.Weapons = append(p.spec.Weapons, primary)
	p.oracle.AddWeapon(primary.Bounds())

	if mirrored {
		twin := primary
		twin.Position = Vec2{X: -pos.X, Y: pos.Y}
		twin.Rotation, twin.TracksTarget = bindRotation(mode, magnitude, twin.Position.X)
		twin.MirrorOf = idx
		p.spec.Weapons[idx].MirrorOf = idx + 1
		p.spec.Weapons = append(p.spec.Weapons, twin)
		p.oracle.AddWeapon(twin.Bounds())
	}
	return nil
}

func (p *Pipeline) pickWeaponType() (*prefabs.WeaponTypeSpec, bool) {
	gen := p.catalog.Generator
	weapons := p.catalog.Weapons
	if len(weapons) == 0 {
		return nil, false
	}
	for attempt := 0; attempt < gen.Attempts.WeaponType; attempt++ {
		wt := &weapons[p.rng.Pick(len(weapons), gen.Scales.WeaponType)]
		if wt.WieldableBy.Has(p.spec.BossType) {
			return wt, true
		}
	}
	return nil, false
}

func (p *Pipeline) pickOrientation(wt *prefabs.WeaponTypeSpec, centred bool) (prefabs.OrientationMode, bool) {
	gen := p.catalog.Generator
	for attempt := 0; attempt < gen.Attempts.WeaponOrientation; attempt++ {
		mode := prefabs.OrientationMode(p.rng.Pick(prefabs.OrientationModeCount, gen.Scales.WeaponOrientation))
		if !wt.Orientations.Has(mode) {
			continue
		}
		if centred && mode.PositionDependent() {
			continue
		}
		return mode, true
	}
	return 0, false
}

// placeWeapon searches for a mount point. Float-capable weapons take the first
// candidate; others must hang from the hull without overlapping placed weapons, and a
// twin at (-x, y) must pass the same checks without touching its primary.
func (p *Pipeline) placeWeapon(wt *prefabs.WeaponTypeSpec, centred, mirrored bool) (Vec2, bool) {
	gen := p.catalog.Generator
	reach := mountDirection.Scale(gen.WeaponReach)
	w, h := float64(wt.Width), float64(wt.Height)

	for attempt := 0; attempt <= gen.Attempts.WeaponPosition; attempt++ {
		x := 0
		if !centred {
			x = p.rng.Int(-gen.WeaponXLimit, gen.WeaponXLimit)
		}
		y := p.rng.Int(-gen.WeaponYLimit, gen.WeaponYLimit)
		pos := Vec2{X: float64(x), Y: float64(y)}
		if wt.CanFloat {
			return pos, true
		}

		b := common.BoundsAround(pos, w, h)
		if !p.oracle.RaycastHitsBody(pos, reach) || p.oracle.Overlaps(b) {
			continue
		}
		if mirrored {
			twinPos := Vec2{X: -pos.X, Y: pos.Y}
			tb := common.BoundsAround(twinPos, w, h)
			if !p.oracle.RaycastHitsBody(twinPos, reach) || p.oracle.Overlaps(tb) || tb.Intersects(b) {
				continue
			}
		}
		return pos, true
	}
	return Vec2{}, false
}

// rotationMagnitude draws the unsigned angle for oblique modes.
func (p *Pipeline) rotationMagnitude(mode prefabs.OrientationMode) float64 {
	switch mode {
	case prefabs.FixedSideways:
		return 90
	case prefabs.FixedObliqueForward:
		return float64(p.rng.Int(0, 90))
	case prefabs.FixedOblique:
		return float64(p.rng.Int(0, 180))
	default:
		return 0
	}
}

// bindRotation signs magnitude by the side of the body the weapon sits on.
func bindRotation(mode prefabs.OrientationMode, magnitude, x float64) (float64, bool) {
	switch mode {
	case prefabs.FixedSideways, prefabs.FixedObliqueForward, prefabs.FixedOblique:
		return magnitude * common.Sign(x), false
	case prefabs.Rotatable:
		return 0, true
	default:
		return 0, false
	}
}

func (p *Pipeline) weaponSprite(wt *prefabs.WeaponTypeSpec) (*image.NRGBA, error) {
	pad := 0
	for _, o := range p.catalog.Generator.Outlines {
		pad += max(o.Thickness, 0)
	}
	w, h := wt.Width+2*pad, wt.Height+2*pad
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	mask, err := p.raster.Rasterize(wt.Shape, raster.Transform{
		X:      float64(w) / 2,
		Y:      float64(h) / 2,
		Width:  float64(wt.Width),
		Height: float64(wt.Height),
	})
	if err != nil {
		return nil, fmt.Errorf("generator: weapon %s: %w", wt.Name, err)
	}
	raster.Composite(img, mask, wt.Color.NRGBA(bodyColor))
	if wt.GenerateColor {
		raster.Multiply(img, p.spec.Palette.WeaponTint.NRGBA())
	}
	return raster.Outline(img, p.outlinePasses()...), nil
}
