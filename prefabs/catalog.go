package prefabs

import (
	"errors"
	"fmt"
)

// Catalog is the full set of content tables the generator draws from.
type Catalog struct {
	Generator GeneratorSpec
	BossTypes []BossTypeSpec
	Shapes    []ShapeTypeSpec
	Weapons   []WeaponTypeSpec
	Attacks   []AttackTypeSpec
}

type bossTypesFile struct {
	BossTypes []BossTypeSpec `yaml:"boss_types"`
}

type shapesFile struct {
	Shapes []ShapeTypeSpec `yaml:"shapes"`
}

type weaponsFile struct {
	Weapons []WeaponTypeSpec `yaml:"weapons"`
}

type attacksFile struct {
	Attacks []AttackTypeSpec `yaml:"attacks"`
}

// LoadCatalog reads generator.yaml, boss_types.yaml, shapes.yaml, weapons.yaml and
// attacks.yaml, preferring copies on disk under Dir over the embedded defaults.
func LoadCatalog() (*Catalog, error) {
	gen, err := LoadSpec[GeneratorSpec]("generator.yaml")
	if err != nil {
		return nil, err
	}
	bosses, err := LoadSpec[bossTypesFile]("boss_types.yaml")
	if err != nil {
		return nil, err
	}
	shapes, err := LoadSpec[shapesFile]("shapes.yaml")
	if err != nil {
		return nil, err
	}
	weapons, err := LoadSpec[weaponsFile]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	attacks, err := LoadSpec[attacksFile]("attacks.yaml")
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Generator: gen,
		BossTypes: bosses.BossTypes,
		Shapes:    shapes.Shapes,
		Weapons:   weapons.Weapons,
		Attacks:   attacks.Attacks,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.Prepare(); err != nil {
		return nil, err
	}
	return c, nil
}

// BossType returns the table for name. Random has no table.
func (c *Catalog) BossType(name BossTypeName) (*BossTypeSpec, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.BossTypes {
		if c.BossTypes[i].Name == name {
			return &c.BossTypes[i], true
		}
	}
	return nil, false
}

// Shape returns the shape archetype called name.
func (c *Catalog) Shape(name string) (*ShapeTypeSpec, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Shapes {
		if c.Shapes[i].Name == name {
			return &c.Shapes[i], true
		}
	}
	return nil, false
}

// Prepare compiles every scripted curve.
func (c *Catalog) Prepare() error {
	curves := []*Curve{&c.Generator.Movement.MovementsCurve, &c.Generator.Movement.WaitTimeCurve}
	for i := range c.BossTypes {
		curves = append(curves, &c.BossTypes[i].ComplexityCurve, &c.BossTypes[i].WeaponQuantityCurve)
	}
	for _, curve := range curves {
		if err := curve.Prepare(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks table consistency. Missing complexity or weapon curves are not
// reported here: the pipeline surfaces those as configuration errors for the run that
// needs them.
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.New("prefabs: nil catalog")
	}
	g := c.Generator
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(g.MaxBossWidth > 0 && g.MaxBossHeight > 0, "max boss size must be positive")
	check(g.ShapeSizeLimiter > 0 && g.ShapeSizeLimiter <= 1, "shape_size_limiter must be in (0,1]")
	check(g.MinShapeFraction > 0, "min_shape_fraction must be positive")
	check(g.Scales.Symmetry > 0, "scales.symmetry must be positive")
	check(g.Scales.BossType > 0, "scales.boss_type must be positive")
	check(g.Scales.Shape > 0, "scales.shape must be positive")
	check(g.Scales.ShapeComplexity > 0, "scales.shape_complexity must be positive")
	check(g.Scales.WeaponQuantity > 0, "scales.weapon_quantity must be positive")
	check(g.Scales.WeaponType > 0, "scales.weapon_type must be positive")
	check(g.Scales.WeaponOrientation > 0, "scales.weapon_orientation must be positive")
	check(g.Scales.PerlinScaleMin > 0 && g.Scales.PerlinScaleMax >= g.Scales.PerlinScaleMin, "perlin scales must be positive and ordered")
	check(g.Attempts.WeaponType >= 0 && g.Attempts.WeaponOrientation >= 0 && g.Attempts.WeaponPosition >= 0, "attempt budgets must not be negative")
	check(g.Attempts.AttackType >= 0 && g.Attempts.AttackWeapon >= 0, "attack attempt budgets must not be negative")
	check(g.Attacks.QuantityMax > 1, "attacks.quantity_max must be greater than 1")
	check(g.Attacks.SequenceLengthMax >= g.Attacks.QuantityMax, "attacks.sequence_length_max must be at least quantity_max")
	check(g.Attacks.SequenceLengthMin < g.Attacks.SequenceLengthMax, "attacks sequence bounds out of order")
	check(g.Movement.QuantityMin > 0, "movement.quantity_min must be positive")
	check(g.Movement.QuantityMin < g.Movement.QuantityMax, "movement.quantity_min must be below quantity_max")
	check(g.Movement.SequenceLengthMax >= g.Movement.QuantityMax, "movement.sequence_length_max must be at least quantity_max")
	check(g.Movement.SequenceLengthMin < g.Movement.SequenceLengthMax, "movement sequence bounds out of order")
	check(g.Movement.PointCountMin > 0, "movement.point_count_min must be positive")
	check(g.Movement.PointCountMin < g.Movement.PointCountMax, "movement.point_count_min must be below point_count_max")
	check(g.Movement.XMax >= g.Movement.XMin && g.Movement.YMax >= g.Movement.YMin, "movement bounds out of order")
	check(len(g.Movement.VelocityCurves) > 0, "movement.velocity_curves must not be empty")
	check(g.Stats.MaxLife >= g.Stats.MinLife && g.Stats.MaxSpeed >= g.Stats.MinSpeed, "stat bounds out of order")
	for i, o := range g.Outlines {
		check(o.Thickness >= 0, "outlines[%d].thickness must not be negative", i)
	}

	check(len(c.Shapes) > 0, "at least one shape archetype is required")
	for _, s := range c.Shapes {
		check(s.Name != "", "shape archetype without a name")
		check(!s.GenerateRotation || s.NearestSymmetricalRot > 0, "shape %s: nearest_symmetrical_rot must be positive", s.Name)
	}
	for _, w := range c.Weapons {
		check(w.Name != "", "weapon archetype without a name")
		check(w.Width > 0 && w.Height > 0, "weapon %s: size must be positive", w.Name)
		check(!w.Orientations.Empty(), "weapon %s: no orientations allowed", w.Name)
	}
	for _, a := range c.Attacks {
		check(a.Name != "", "attack archetype without a name")
		check(a.ProjectilesPerShot >= 0, "attack %s: projectiles_per_shot must not be negative", a.Name)
	}
	for _, b := range c.BossTypes {
		check(b.Name != Random, "boss type tables cannot be named Random")
	}

	if len(errs) > 0 {
		return fmt.Errorf("prefabs: invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}
