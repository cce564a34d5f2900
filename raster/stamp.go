package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Stamp draws src onto dst centred at (cx, cy) and rotated by rotation degrees.
func Stamp(dst draw.Image, src image.Image, cx, cy, rotation float64) {
	b := src.Bounds()
	hw, hh := float64(b.Dx())/2, float64(b.Dy())/2
	rad := rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	// Source pixel (sx, sy) lands at R·(s - srcCentre) + (cx, cy).
	ox := float64(b.Min.X) + hw
	oy := float64(b.Min.Y) + hh
	m := f64.Aff3{
		cos, -sin, cx - cos*ox + sin*oy,
		sin, cos, cy - sin*ox - cos*oy,
	}
	draw.BiLinear.Transform(dst, m, src, b, draw.Over, nil)
}
