package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/bossforge/generator"
	"github.com/milk9111/bossforge/raster"
)

// preview composites the body sprite and weapons over the background colour.
func preview(spec *generator.BossSpec) *image.NRGBA {
	bounds := image.Rect(0, 0, spec.TextureWidth, spec.TextureHeight)
	if spec.Sprite != nil {
		bounds = spec.Sprite.Bounds()
	}
	img := image.NewNRGBA(bounds)
	draw.Draw(img, bounds, &image.Uniform{C: spec.Palette.Background.Color}, image.Point{}, draw.Src)
	if spec.Sprite != nil {
		draw.Draw(img, bounds, spec.Sprite, bounds.Min, draw.Over)
	}

	cx := float64(bounds.Min.X) + float64(bounds.Dx())/2
	cy := float64(bounds.Min.Y) + float64(bounds.Dy())/2
	for _, w := range spec.Weapons {
		if w.Sprite == nil {
			continue
		}
		raster.Stamp(img, w.Sprite, cx+w.Position.X, cy+w.Position.Y, w.Rotation)
	}
	return img
}

func writeBoss(dir string, spec *generator.BossSpec) error {
	base := filepath.Join(dir, fmt.Sprintf("boss_%d", spec.Seed))

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview(spec)); err != nil {
		f.Close()
		return fmt.Errorf("bossgen: encode %s.png: %w", base, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("bossgen: marshal spec: %w", err)
	}
	return os.WriteFile(base+".yaml", data, 0o644)
}
