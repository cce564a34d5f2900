package raster

import (
	"image"
	"image/color"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Wash is a seeded simplex colour field. ScaleX and ScaleY stretch the field in pixels.
// When Symmetric, x is folded around the vertical centre line so both halves match.
type Wash struct {
	Seed      int64
	ScaleX    float64
	ScaleY    float64
	Symmetric bool
}

// Apply recolours every solid pixel of img with the palette entry picked by the field.
func (w Wash) Apply(img *image.NRGBA, palette []color.NRGBA) {
	if len(palette) == 0 {
		return
	}
	noise := opensimplex.NewNormalized(w.Seed)
	sx, sy := w.ScaleX, w.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}

	b := img.Bounds()
	half := float64(b.Min.X) + float64(b.Dx())/2
	band := 1 / float64(len(palette))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !Opaque(img, x, y) {
				continue
			}
			fx := float64(x) + 0.5
			if w.Symmetric {
				fx -= half
				if fx < 0 {
					fx = -fx
				}
			}
			v := noise.Eval2(fx/sx, (float64(y)+0.5)/sy)
			idx := int(v / band)
			if idx < 0 {
				idx = 0
			}
			if idx >= len(palette) {
				idx = len(palette) - 1
			}
			c := palette[idx]
			c.A = 255
			img.SetNRGBA(x, y, c)
		}
	}
}
