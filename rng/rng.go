// Package rng is the single seeded random stream a generation run draws from.
package rng

import "math/rand"

// Source wraps one *rand.Rand. It is not safe for concurrent use; each run owns one.
type Source struct {
	seed int64
	r    *rand.Rand
}

func New(seed int64) *Source {
	return &Source{seed: seed, r: rand.New(rand.NewSource(seed))}
}

func (s *Source) Seed() int64 {
	return s.seed
}

// Reseed restarts the stream so the next draws replay from seed.
func (s *Source) Reseed(seed int64) {
	s.seed = seed
	s.r.Seed(seed)
}

// Int returns a value in [min, maxExclusive). An empty or inverted range yields min.
func (s *Source) Int(min, maxExclusive int) int {
	if maxExclusive <= min {
		return min
	}
	return min + s.r.Intn(maxExclusive-min)
}

// Value draws a symmetry or probability value in [0, max).
func (s *Source) Value(max int) int {
	return s.Int(0, max)
}

// Chance draws over [0, max) and reports whether the normalised draw is below p.
func (s *Source) Chance(p float64, max int) bool {
	if max <= 0 {
		return false
	}
	return float64(s.Value(max))/float64(max) < p
}

// Pick draws over [0, scale) and maps the draw onto an index in [0, n).
func (s *Source) Pick(n, scale int) int {
	if n <= 0 {
		return -1
	}
	if scale <= 0 {
		return 0
	}
	idx := int(float64(s.Value(scale)) / float64(scale) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// Int63 draws a seed for derived generators such as the noise wash.
func (s *Source) Int63() int64 {
	return s.r.Int63()
}

// NewSeed returns a fresh seed for runs that do not reuse the stored one.
func NewSeed() int64 {
	return rand.Int63()
}
