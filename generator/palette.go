package generator

import "github.com/milk9111/bossforge/palette"

func (p *Pipeline) generatePalette() {
	p.spec.Palette = palette.Generate(p.rng, p.catalog.Generator)
}
