package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// OutlinePass is one ring drawn around the solid pixels of an image.
type OutlinePass struct {
	Color     color.NRGBA
	Thickness int
}

// OutlineMask returns an image holding only outline pixels: every transparent pixel of src
// within thickness pixels (chessboard distance) of a solid one is set to col.
func OutlineMask(src *image.NRGBA, thickness int, col color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(b)
	if thickness <= 0 {
		return out
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if Opaque(src, x, y) {
				continue
			}
			ymin := max(y-thickness, b.Min.Y)
			ymax := min(y+thickness, b.Max.Y-1)
			xmin := max(x-thickness, b.Min.X)
			xmax := min(x+thickness, b.Max.X-1)

			found := false
			for yy := ymin; yy <= ymax && !found; yy++ {
				for xx := xmin; xx <= xmax; xx++ {
					if Opaque(src, xx, yy) {
						found = true
						break
					}
				}
			}
			if found {
				out.SetNRGBA(x, y, col)
			}
		}
	}
	return out
}

// Outline draws each pass around the running result, so later passes ring the earlier
// ones. It returns a new image and leaves src untouched.
func Outline(src *image.NRGBA, passes ...OutlinePass) *image.NRGBA {
	cur := image.NewNRGBA(src.Bounds())
	draw.Draw(cur, cur.Bounds(), src, src.Bounds().Min, draw.Src)
	for _, p := range passes {
		ring := OutlineMask(cur, p.Thickness, p.Color)
		draw.Draw(cur, cur.Bounds(), ring, ring.Bounds().Min, draw.Over)
	}
	return cur
}
