package generator

import (
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/milk9111/bossforge/common"
)

// chanceScale is the range probability draws for movement options are taken over.
const chanceScale = 100

var velocityCurves = map[string]ease.TweenFunc{
	"Linear":       ease.Linear,
	"InQuad":       ease.InQuad,
	"OutQuad":      ease.OutQuad,
	"InOutQuad":    ease.InOutQuad,
	"InCubic":      ease.InCubic,
	"OutCubic":     ease.OutCubic,
	"InOutCubic":   ease.InOutCubic,
	"InQuart":      ease.InQuart,
	"OutQuart":     ease.OutQuart,
	"InOutQuart":   ease.InOutQuart,
	"InSine":       ease.InSine,
	"OutSine":      ease.OutSine,
	"InOutSine":    ease.InOutSine,
	"InExpo":       ease.InExpo,
	"OutExpo":      ease.OutExpo,
	"InOutExpo":    ease.InOutExpo,
	"InCirc":       ease.InCirc,
	"OutCirc":      ease.OutCirc,
	"InOutCirc":    ease.InOutCirc,
	"InBack":       ease.InBack,
	"OutBack":      ease.OutBack,
	"InOutBack":    ease.InOutBack,
	"OutBounce":    ease.OutBounce,
	"InOutBounce":  ease.InOutBounce,
	"OutElastic":   ease.OutElastic,
	"InOutElastic": ease.InOutElastic,
}

// VelocityCurves lists the velocity profile names a movement pattern may use.
func VelocityCurves() []string {
	names := make([]string, 0, len(velocityCurves))
	for name := range velocityCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MovementPattern is a set of waypoints the boss travels between. A constrained axis
// stays at the start point's value.
type MovementPattern struct {
	Movements         int     `yaml:"movements"`
	Points            []Vec2  `yaml:"points"`
	IncludeStartPoint bool    `yaml:"include_start_point"`
	ConstrainX        bool    `yaml:"constrain_x"`
	ConstrainY        bool    `yaml:"constrain_y"`
	RandomOrder       bool    `yaml:"random_order"`
	WaitTime          float64 `yaml:"wait_time"`
	VelocityCurve     string  `yaml:"velocity_curve"`
}

// Destinations is the number of distinct destinations, counting the start point when
// it is included.
func (m MovementPattern) Destinations() int {
	n := len(m.Points)
	if m.IncludeStartPoint {
		n++
	}
	return n
}

// Destination returns the i-th destination from start. With RandomOrder the index is
// chosen by pick(n) instead of cycling through the points in order.
func (m MovementPattern) Destination(i int, start Vec2, pick func(n int) int) Vec2 {
	n := m.Destinations()
	if n == 0 {
		return start
	}
	idx := ((i % n) + n) % n
	if m.RandomOrder && pick != nil {
		idx = common.ClampInt(pick(n), 0, n-1)
	}

	dest := start
	if !m.IncludeStartPoint || idx < len(m.Points) {
		dest = m.Points[idx]
	}
	if m.ConstrainX {
		dest.X = start.X
	}
	if m.ConstrainY {
		dest.Y = start.Y
	}
	return dest
}

// Motion eases a position between two points along both axes.
type Motion struct {
	x, y *gween.Tween
}

// Update advances the motion by dt seconds.
func (m *Motion) Update(dt float32) (Vec2, bool) {
	x, doneX := m.x.Update(dt)
	y, doneY := m.y.Update(dt)
	return Vec2{X: float64(x), Y: float64(y)}, doneX && doneY
}

// Tween builds a motion from one point to another using the pattern's velocity profile.
func (m MovementPattern) Tween(from, to Vec2, duration float32) (*Motion, error) {
	fn, ok := velocityCurves[m.VelocityCurve]
	if !ok {
		return nil, fmt.Errorf("generator: %w: %q", ErrUnknownVelocityCurve, m.VelocityCurve)
	}
	return &Motion{
		x: gween.New(float32(from.X), float32(to.X), duration, fn),
		y: gween.New(float32(from.Y), float32(to.Y), duration, fn),
	}, nil
}

func (p *Pipeline) generateMovement() error {
	ms := &p.catalog.Generator.Movement
	count := p.rng.Int(ms.QuantityMin, ms.QuantityMax)

	for i := 0; i < count; i++ {
		var m MovementPattern

		v, err := p.drawCurve(&ms.MovementsCurve, chanceScale)
		if err != nil {
			return fmt.Errorf("generator: movements curve: %w", err)
		}
		m.Movements = max(common.Round(v), 1)

		points := p.rng.Int(ms.PointCountMin, ms.PointCountMax)
		m.Points = make([]Vec2, points)
		for j := range m.Points {
			m.Points[j] = Vec2{
				X: float64(p.rng.Int(ms.XMin, ms.XMax)),
				Y: float64(p.rng.Int(ms.YMin, ms.YMax)),
			}
		}

		m.IncludeStartPoint = p.rng.Chance(ms.IncludeStartPointChance, chanceScale)
		m.ConstrainX = p.rng.Chance(ms.ConstrainXAxisChance, chanceScale)
		if !m.ConstrainX {
			m.ConstrainY = p.rng.Chance(ms.ConstrainYAxisChance, chanceScale)
		}
		m.RandomOrder = p.rng.Chance(ms.RandomOrderChance, chanceScale)

		wait, err := p.drawCurve(&ms.WaitTimeCurve, chanceScale)
		if err != nil {
			return fmt.Errorf("generator: wait time curve: %w", err)
		}
		m.WaitTime = wait
		m.VelocityCurve = ms.VelocityCurves[p.rng.Int(0, len(ms.VelocityCurves))]

		p.spec.MovementPatterns = append(p.spec.MovementPatterns, m)
	}
	return nil
}

func (p *Pipeline) generateMovementSequence() {
	ms := p.catalog.Generator.Movement
	p.spec.MovementSequence = p.sequence(len(p.spec.MovementPatterns), ms.SequenceLengthMin, ms.SequenceLengthMax)
}
