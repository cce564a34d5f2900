package generator

import "math"

func (p *Pipeline) generateStats() {
	s := p.catalog.Generator.Stats
	p.spec.Stats = Stats{
		Life:        p.rng.Int(s.MinLife, s.MaxLife),
		SpeedFactor: float64(p.rng.Int(int(math.Round(s.MinSpeed*100)), int(math.Round(s.MaxSpeed*100)))) / 100,
	}
}
