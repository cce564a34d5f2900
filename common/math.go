package common

import "math"

// Sign returns -1 for negative values and +1 otherwise, so zero counts as positive.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Wrap01 maps v into [0,1).
func Wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}

// RotatedBounds returns the axis-aligned size of a w×h box rotated by deg degrees.
func RotatedBounds(w, h, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	s, c := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	return h*s + w*c, w*s + h*c
}
