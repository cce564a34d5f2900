package raster

import (
	"image"
	"image/color"
)

// MaskThreshold is the coverage at and above which a mask pixel counts as solid.
const MaskThreshold = 128

// Composite stamps mask onto dst as opaque c wherever coverage reaches MaskThreshold.
// Pixels are replaced, never blended.
func Composite(dst *image.NRGBA, mask *image.Alpha, c color.NRGBA) {
	c.A = 255
	r := mask.Bounds().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if mask.AlphaAt(x, y).A < MaskThreshold {
				continue
			}
			dst.SetNRGBA(x, y, c)
		}
	}
}

// Opaque reports whether the pixel at (x, y) is solid.
func Opaque(img *image.NRGBA, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return false
	}
	return img.Pix[img.PixOffset(x, y)+3] != 0
}

// Multiply tints every pixel of img by c, channel by channel.
func Multiply(img *image.NRGBA, c color.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(uint16(img.Pix[i]) * uint16(c.R) / 255)
		img.Pix[i+1] = uint8(uint16(img.Pix[i+1]) * uint16(c.G) / 255)
		img.Pix[i+2] = uint8(uint16(img.Pix[i+2]) * uint16(c.B) / 255)
	}
}
