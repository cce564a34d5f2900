// Package palette draws the body colour scheme, the weapon tint and the backdrop.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/bossforge/common"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/rng"
)

const (
	minColors = 2
	maxColors = 5

	complementaryOffset  = 0.5
	splitOffsetFirst     = 5.0 / 12.0
	splitOffsetSecond    = 7.0 / 12.0
	backgroundOffsetUnit = 100
)

// HSV stores channels in [0,1].
type HSV struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	V float64 `yaml:"v"`
}

func (c HSV) Colorful() colorful.Color {
	return colorful.Hsv(c.H*360, c.S, c.V).Clamped()
}

func (c HSV) NRGBA() color.NRGBA {
	r, g, b := c.Colorful().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Background is the presentation backdrop drawn alongside the palette.
type Background struct {
	Color   color.NRGBA `yaml:"color"`
	OffsetX float64     `yaml:"offset_x"`
	OffsetY float64     `yaml:"offset_y"`
}

type Palette struct {
	Colors        []HSV      `yaml:"colors"`
	Complementary bool       `yaml:"complementary"`
	WeaponTint    HSV        `yaml:"weapon_tint"`
	Background    Background `yaml:"background"`
}

// Generate draws a palette from r. Draw order: count, base colour, scheme decision, the
// remaining colours, then the background.
func Generate(r *rng.Source, gen prefabs.GeneratorSpec) Palette {
	n := r.Int(minColors, maxColors)
	p := Palette{Colors: make([]HSV, n)}

	p.Colors[0] = randomHSV(r)

	symmetryMax := gen.Scales.Symmetry
	draw := r.Value(symmetryMax)
	p.Complementary = symmetryMax > 0 && float64(draw)/float64(symmetryMax) > gen.NonComplementaryColorChance

	for i := 1; i < n; i++ {
		if p.Complementary && i <= 2 {
			p.Colors[i] = offsetHue(p.Colors[0], complementOffset(i, n))
			continue
		}
		p.Colors[i] = randomHSV(r)
	}

	p.WeaponTint = Tint(p.Colors[0], gen.WeaponBrightnessTintAmount, gen.WeaponBrightnessTintThreshold)
	p.Background = generateBackground(r, p, gen.UseColorSchemeForBackground)
	return p
}

// Tint keeps base hue and saturation and moves brightness away from the threshold.
func Tint(base HSV, amount, threshold float64) HSV {
	v := base.V
	if v > threshold {
		v -= amount
	} else {
		v += amount
	}
	return HSV{H: base.H, S: base.S, V: common.Clamp(v, 0, 1)}
}

// NRGBA converts every body colour.
func (p Palette) NRGBA() []color.NRGBA {
	out := make([]color.NRGBA, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.NRGBA()
	}
	return out
}

func complementOffset(i, n int) float64 {
	if i == 1 {
		if n == 2 {
			return complementaryOffset
		}
		return splitOffsetFirst
	}
	return splitOffsetSecond
}

func offsetHue(base HSV, offset float64) HSV {
	return HSV{H: common.Wrap01(base.H + offset), S: base.S, V: base.V}
}

func randomHSV(r *rng.Source) HSV {
	return HSV{
		H: float64(r.Int(0, 100)) / 100,
		S: float64(r.Int(0, 100)) / 100,
		V: float64(r.Int(0, 100)) / 100,
	}
}

func generateBackground(r *rng.Source, p Palette, fromScheme bool) Background {
	var bg Background
	if fromScheme {
		bg.Color = p.Colors[r.Int(0, len(p.Colors))].NRGBA()
	} else {
		bg.Color = color.NRGBA{
			R: uint8(r.Int(0, 255)),
			G: uint8(r.Int(0, 255)),
			B: uint8(r.Int(0, 255)),
			A: 255,
		}
	}
	bg.OffsetX = float64(r.Int(-backgroundOffsetUnit, backgroundOffsetUnit)) / backgroundOffsetUnit
	bg.OffsetY = float64(r.Int(-backgroundOffsetUnit, backgroundOffsetUnit)) / backgroundOffsetUnit
	return bg
}
