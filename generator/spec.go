package generator

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/bossforge/common"
	"github.com/milk9111/bossforge/palette"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/symmetry"
)

type (
	Vec2   = common.Vec2
	Bounds = common.Bounds
)

// BossSpec is everything a run produces. Identical seeds and content tables produce
// identical specs.
type BossSpec struct {
	Seed     int64                `yaml:"seed"`
	BossType prefabs.BossTypeName `yaml:"boss_type"`
	Palette  palette.Palette      `yaml:"palette"`

	TextureWidth  int              `yaml:"texture_width"`
	TextureHeight int              `yaml:"texture_height"`
	Shapes        []ShapePlacement `yaml:"shapes"`
	Pattern       Pattern          `yaml:"pattern"`
	Sprite        *image.NRGBA     `yaml:"-"`

	Weapons        []WeaponPlacement `yaml:"weapons"`
	Attacks        []AttackInstance  `yaml:"attacks"`
	AttackSequence []int             `yaml:"attack_sequence"`

	MovementPatterns []MovementPattern `yaml:"movement_patterns"`
	MovementSequence []int             `yaml:"movement_sequence"`

	Stats Stats `yaml:"stats"`
}

// ShapePlacement is one primitive stamped onto the body texture. A mirrored placement is
// the twin of the placement that follows it.
type ShapePlacement struct {
	Shape    string         `yaml:"shape"`
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	ScaleX   float64        `yaml:"scale_x"`
	ScaleY   float64        `yaml:"scale_y"`
	Rotation float64        `yaml:"rotation"`
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Symmetry symmetry.Class `yaml:"symmetry"`
	Mirrored bool           `yaml:"mirrored"`
}

// Pattern records the colour wash applied over the body.
type Pattern struct {
	ScaleX    float64 `yaml:"scale_x"`
	ScaleY    float64 `yaml:"scale_y"`
	Symmetric bool    `yaml:"symmetric"`
	NoiseSeed int64   `yaml:"noise_seed"`
}

// WeaponPlacement is a mounted weapon. Twins reference each other through MirrorOf and
// share Sprite.
type WeaponPlacement struct {
	Type         string                  `yaml:"type"`
	Orientation  prefabs.OrientationMode `yaml:"orientation"`
	Position     Vec2                    `yaml:"position"`
	Width        float64                 `yaml:"width"`
	Height       float64                 `yaml:"height"`
	Rotation     float64                 `yaml:"rotation"`
	TracksTarget bool                    `yaml:"tracks_target"`
	Centered     bool                    `yaml:"centered"`
	CanFloat     bool                    `yaml:"can_float"`
	MirrorOf     int                     `yaml:"mirror_of"`
	Sprite       *image.NRGBA            `yaml:"-"`
}

// Bounds returns the weapon footprint in body-local pixels.
func (w WeaponPlacement) Bounds() Bounds {
	return common.BoundsAround(w.Position, w.Width, w.Height)
}

type Stats struct {
	Life        int     `yaml:"life"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

var errInvalidSpec = errors.New("invalid boss spec")

// Validate checks the structural invariants of a spec.
func (s *BossSpec) Validate() error {
	if s == nil {
		return fmt.Errorf("generator: %w: nil spec", errInvalidSpec)
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.BossType == prefabs.Random {
		fail("boss type was never resolved")
	}
	if n := len(s.Palette.Colors); n < 2 || n > 4 {
		fail("palette has %d colours, want 2-4", n)
	}

	for i, w := range s.Weapons {
		if w.Centered && w.Orientation.PositionDependent() {
			fail("weapon %d: centred weapon with orientation %s", i, w.Orientation)
		}
		if w.MirrorOf == -1 {
			continue
		}
		if w.MirrorOf < 0 || w.MirrorOf >= len(s.Weapons) || w.MirrorOf == i {
			fail("weapon %d: mirror index %d out of range", i, w.MirrorOf)
			continue
		}
		twin := s.Weapons[w.MirrorOf]
		if twin.MirrorOf != i {
			fail("weapon %d: twin %d does not point back", i, w.MirrorOf)
		}
		if twin.Type != w.Type || twin.Orientation != w.Orientation {
			fail("weapon %d: twin %d differs in type or orientation", i, w.MirrorOf)
		}
		if twin.Position.X != -w.Position.X || twin.Position.Y != w.Position.Y {
			fail("weapon %d: twin %d is not mirrored across the centre line", i, w.MirrorOf)
		}
	}

	for i, a := range s.Attacks {
		if a.Weapon < -1 || a.Weapon >= len(s.Weapons) {
			fail("attack %d: weapon index %d out of range", i, a.Weapon)
		}
		for _, wi := range a.Weapons {
			if wi < 0 || wi >= len(s.Weapons) {
				fail("attack %d: assigned weapon %d out of range", i, wi)
			}
		}
	}
	for i, idx := range s.AttackSequence {
		if idx < 0 || idx >= len(s.Attacks) {
			fail("attack sequence %d: index %d out of range", i, idx)
		}
	}
	if len(s.Attacks) == 0 && len(s.AttackSequence) > 0 {
		fail("attack sequence without attacks")
	}

	for i, m := range s.MovementPatterns {
		if m.ConstrainX && m.ConstrainY {
			fail("movement pattern %d constrains both axes", i)
		}
		if m.Movements < 1 {
			fail("movement pattern %d has %d movements", i, m.Movements)
		}
	}
	for i, idx := range s.MovementSequence {
		if idx < 0 || idx >= len(s.MovementPatterns) {
			fail("movement sequence %d: index %d out of range", i, idx)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("generator: %w: %w", errInvalidSpec, errors.Join(errs...))
	}
	return nil
}
