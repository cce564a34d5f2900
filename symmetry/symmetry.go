// Package symmetry turns a symmetry draw into a symmetry class.
package symmetry

import "github.com/milk9111/bossforge/prefabs"

// Class is a bucket index returned by Resolve.
type Class int

const (
	None Class = iota - 1
	Asymmetric
	NormaliseRotation
	CentreX
	Mirror
)

func (c Class) String() string {
	switch c {
	case Asymmetric:
		return "Asymmetric"
	case NormaliseRotation:
		return "NormaliseRotation"
	case CentreX:
		return "CentreX"
	case Mirror:
		return "Mirror"
	default:
		return "None"
	}
}

// Weapon bucket order.
const (
	WeaponAsymmetric = 0
	WeaponCentreX    = 1
	WeaponMirror     = 2
)

// Resolve returns the index of the weight whose cumulative bucket contains v/max. Buckets
// are half-open and checked in order; the last non-zero bucket closes at 1. It returns -1
// when every weight is zero or max is not positive.
func Resolve(v, max int, weights ...float64) int {
	if max <= 0 {
		return -1
	}
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if total <= 0 {
		return -1
	}

	x := float64(v) / float64(max)
	lo := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		hi := lo + w/total
		if i == last {
			hi = 1
		}
		if x >= lo && x < hi {
			return i
		}
		lo = hi
	}
	if x < 0 {
		return firstPositive(weights)
	}
	return last
}

func firstPositive(weights []float64) int {
	for i, w := range weights {
		if w > 0 {
			return i
		}
	}
	return -1
}

// ShapeClass resolves a shape archetype's propensities scaled by the boss type.
func ShapeClass(v, max int, s prefabs.ShapeSymmetry, m prefabs.SymmetryMultipliers) Class {
	return Class(Resolve(v, max, ShapeWeights(s, m)...))
}

// ShapeWeights builds the four-bucket weight tuple for a shape.
func ShapeWeights(s prefabs.ShapeSymmetry, m prefabs.SymmetryMultipliers) []float64 {
	return []float64{
		s.Asymmetric * m.Asymmetric,
		s.NormaliseRotation * m.NormaliseRotation,
		s.CentreX * m.CentreX,
		s.Mirror * m.Mirror,
	}
}

// WeaponWeights builds the three-bucket weight tuple for a weapon.
func WeaponWeights(s prefabs.WeaponSymmetry, m prefabs.SymmetryMultipliers) []float64 {
	return []float64{
		s.Asymmetric * m.Asymmetric,
		s.CentreX * m.CentreX,
		s.Mirror * m.Mirror,
	}
}

func (c Class) MarshalYAML() (any, error) {
	return c.String(), nil
}
