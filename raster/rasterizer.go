package raster

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Transform places a primitive on the canvas. X and Y are the centre in pixels, Width and
// Height the unrotated size, Rotation is in degrees and FlipX mirrors the x scale.
type Transform struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	FlipX         bool
}

// Aff3 maps unit-space shape coordinates onto the canvas.
func (t Transform) Aff3() f64.Aff3 {
	sx := t.Width
	if t.FlipX {
		sx = -sx
	}
	rad := t.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return f64.Aff3{
		cos * sx, -sin * t.Height, t.X,
		sin * sx, cos * t.Height, t.Y,
	}
}

func apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

const (
	defaultCacheTTL     = 10 * time.Minute
	defaultCacheCleanup = 20 * time.Minute
)

// Rasterizer turns a shape and transform into a coverage mask. Masks are cached by shape
// and transform and shared between callers, so they must be treated as read-only.
type Rasterizer struct {
	cache *cache.Cache
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{cache: cache.New(defaultCacheTTL, defaultCacheCleanup)}
}

// Rasterize returns a mask whose bounds are the transformed shape's pixel bounding box in
// canvas coordinates.
func (r *Rasterizer) Rasterize(shape string, t Transform) (*image.Alpha, error) {
	contours, ok := primitives[shape]
	if !ok {
		return nil, fmt.Errorf("raster: unknown shape %q", shape)
	}
	if t.Width <= 0 || t.Height <= 0 {
		return nil, fmt.Errorf("raster: %s: non-positive size %vx%v", shape, t.Width, t.Height)
	}

	key := cacheKey(shape, t)
	if r != nil && r.cache != nil {
		if v, found := r.cache.Get(key); found {
			return v.(*image.Alpha), nil
		}
	}

	mask := rasterize(contours, t.Aff3())
	if r != nil && r.cache != nil {
		r.cache.SetDefault(key, mask)
	}
	return mask, nil
}

// Len reports the number of cached masks.
func (r *Rasterizer) Len() int {
	if r == nil || r.cache == nil {
		return 0
	}
	return r.cache.ItemCount()
}

func (r *Rasterizer) Flush() {
	if r != nil && r.cache != nil {
		r.cache.Flush()
	}
}

func cacheKey(shape string, t Transform) string {
	return fmt.Sprintf("%s|%.2f|%.2f|%.2f|%.2f|%.2f|%t", shape, t.X, t.Y, t.Width, t.Height, t.Rotation, t.FlipX)
}

func rasterize(contours []Contour, m f64.Aff3) *image.Alpha {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	placed := make([][]f64.Vec2, len(contours))
	for i, c := range contours {
		placed[i] = make([]f64.Vec2, len(c))
		for j, p := range c {
			q := apply(m, p)
			placed[i][j] = q
			minX, minY = math.Min(minX, q[0]), math.Min(minY, q[1])
			maxX, maxY = math.Max(maxX, q[0]), math.Max(maxY, q[1])
		}
	}

	bounds := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rectangle{Min: bounds.Min, Max: bounds.Min})
	}

	z := vector.NewRasterizer(w, h)
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	for _, c := range placed {
		if len(c) < 3 {
			continue
		}
		z.MoveTo(float32(c[0][0])-ox, float32(c[0][1])-oy)
		for _, p := range c[1:] {
			z.LineTo(float32(p[0])-ox, float32(p[1])-oy)
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(bounds.Min)
	return mask
}
