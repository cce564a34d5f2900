// Package raster draws the primitive shapes the body and weapons are built from.
package raster

import (
	"math"
	"sort"

	"golang.org/x/image/math/f64"
)

// Contour is a closed polygon in unit space, centred on the origin with extents of ±0.5.
type Contour []f64.Vec2

const curveSegments = 64

// primitives maps a shape name to its contours. Holes wind opposite to their outer contour.
var primitives = map[string][]Contour{
	"CIRCLE":     {ellipse(0.5, 0.5)},
	"OVAL":       {ellipse(0.5, 0.5)},
	"RING":       {ellipse(0.5, 0.5), reverse(ellipse(0.3, 0.3))},
	"HALO":       {ellipse(0.5, 0.5), reverse(ellipse(0.4, 0.4))},
	"SEMICIRCLE": {semiEllipse()},
	"SEMIOVAL":   {semiEllipse()},
	"SQUARE":     {rect()},
	"RECT":       {rect()},
	"DIAMOND":    {{{0, -0.5}, {0.5, 0}, {0, 0.5}, {-0.5, 0}}},
	"RHOMBUS":    {{{-0.25, -0.5}, {0.5, -0.5}, {0.25, 0.5}, {-0.5, 0.5}}},
	"EQUITRI":    {polygon(3, -90)},
	"ISOTRI":     {{{0, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}},
	"RANGLETRI":  {{{-0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}},
	"SCALENETRI": {{{-0.2, -0.5}, {0.5, 0.5}, {-0.5, 0.2}}},
	"PENT":       {polygon(5, -90)},
	"IPENT":      {polygon(5, 90)},
	"HEX":        {polygon(6, 0)},
	"IHEX":       {polygon(6, 90)},
	"FIVESTAR":   {star(5, 0.2)},
	"SIXSTAR":    {star(6, 0.28)},
}

// Shapes lists the known primitive names in sorted order.
func Shapes() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func HasShape(name string) bool {
	_, ok := primitives[name]
	return ok
}

func ellipse(rx, ry float64) Contour {
	c := make(Contour, curveSegments)
	for i := range c {
		a := 2 * math.Pi * float64(i) / curveSegments
		c[i] = f64.Vec2{rx * math.Cos(a), ry * math.Sin(a)}
	}
	return c
}

// semiEllipse is the lower half of an ellipse, flat edge on top.
func semiEllipse() Contour {
	n := curveSegments / 2
	c := make(Contour, 0, n+1)
	for i := 0; i <= n; i++ {
		a := math.Pi * float64(i) / float64(n)
		c = append(c, f64.Vec2{0.5 * math.Cos(a), -0.5 + math.Sin(a)})
	}
	return c
}

func rect() Contour {
	return Contour{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
}

// polygon builds a regular n-gon inscribed in the unit box, first vertex at startDeg.
func polygon(n int, startDeg float64) Contour {
	c := make(Contour, n)
	for i := range c {
		a := (startDeg + 360*float64(i)/float64(n)) * math.Pi / 180
		c[i] = f64.Vec2{0.5 * math.Cos(a), 0.5 * math.Sin(a)}
	}
	return c
}

func star(points int, inner float64) Contour {
	c := make(Contour, 2*points)
	for i := range c {
		r := 0.5
		if i%2 == 1 {
			r = inner
		}
		a := (-90 + 180*float64(i)/float64(points)) * math.Pi / 180
		c[i] = f64.Vec2{r * math.Cos(a), r * math.Sin(a)}
	}
	return c
}

func reverse(c Contour) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}
