package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GeneratorSpec holds the designer-facing generation constants from generator.yaml.
type GeneratorSpec struct {
	MaxBossWidth     int     `yaml:"max_boss_width"`
	MaxBossHeight    int     `yaml:"max_boss_height"`
	ShapeSizeLimiter float64 `yaml:"shape_size_limiter"`
	MinShapeFraction int     `yaml:"min_shape_fraction"`

	WeaponXLimit int     `yaml:"weapon_x_limit"`
	WeaponYLimit int     `yaml:"weapon_y_limit"`
	WeaponReach  float64 `yaml:"weapon_reach"`

	NonComplementaryColorChance   float64 `yaml:"non_complementary_color_chance"`
	AsymmetricPatternChance       float64 `yaml:"asymmetric_pattern_chance"`
	WeaponBrightnessTintAmount    float64 `yaml:"weapon_brightness_tint_amount"`
	WeaponBrightnessTintThreshold float64 `yaml:"weapon_brightness_tint_threshold"`
	UseColorSchemeForBackground   bool    `yaml:"use_color_scheme_for_background"`

	Scales   ScalesSpec    `yaml:"scales"`
	Attempts AttemptsSpec  `yaml:"attempts"`
	Outlines []OutlineSpec `yaml:"outlines"`
	Attacks  AttackLimits  `yaml:"attacks"`
	Movement MovementSpec  `yaml:"movement"`
	Stats    StatsSpec     `yaml:"stats"`
}

// ScalesSpec are the integer ranges each probability draw is taken over.
type ScalesSpec struct {
	BossType          int `yaml:"boss_type"`
	Symmetry          int `yaml:"symmetry"`
	ShapeComplexity   int `yaml:"shape_complexity"`
	Shape             int `yaml:"shape"`
	PerlinScaleMin    int `yaml:"perlin_scale_min"`
	PerlinScaleMax    int `yaml:"perlin_scale_max"`
	WeaponQuantity    int `yaml:"weapon_quantity"`
	WeaponType        int `yaml:"weapon_type"`
	WeaponOrientation int `yaml:"weapon_orientation"`
}

type AttemptsSpec struct {
	WeaponType        int `yaml:"weapon_type"`
	WeaponOrientation int `yaml:"weapon_orientation"`
	WeaponPosition    int `yaml:"weapon_position"`
	AttackType        int `yaml:"attack_type"`
	AttackWeapon      int `yaml:"attack_weapon"`
}

type OutlineSpec struct {
	Color     YAMLColor `yaml:"color"`
	Thickness int       `yaml:"thickness"`
}

type AttackLimits struct {
	QuantityMax       int `yaml:"quantity_max"`
	SequenceLengthMin int `yaml:"sequence_length_min"`
	SequenceLengthMax int `yaml:"sequence_length_max"`
}

type MovementSpec struct {
	QuantityMin       int `yaml:"quantity_min"`
	QuantityMax       int `yaml:"quantity_max"`
	SequenceLengthMin int `yaml:"sequence_length_min"`
	SequenceLengthMax int `yaml:"sequence_length_max"`
	PointCountMin     int `yaml:"point_count_min"`
	PointCountMax     int `yaml:"point_count_max"`

	XMin int `yaml:"x_min"`
	XMax int `yaml:"x_max"`
	YMin int `yaml:"y_min"`
	YMax int `yaml:"y_max"`

	IncludeStartPointChance float64 `yaml:"include_start_point_chance"`
	ConstrainXAxisChance    float64 `yaml:"constrain_x_axis_chance"`
	ConstrainYAxisChance    float64 `yaml:"constrain_y_axis_chance"`
	RandomOrderChance       float64 `yaml:"random_order_chance"`

	MovementsCurve Curve    `yaml:"movements_curve"`
	WaitTimeCurve  Curve    `yaml:"wait_time_curve"`
	VelocityCurves []string `yaml:"velocity_curves"`
}

type StatsSpec struct {
	MinLife  int     `yaml:"min_life"`
	MaxLife  int     `yaml:"max_life"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// SymmetryMultipliers scale an archetype's symmetry propensities per boss type.
type SymmetryMultipliers struct {
	Asymmetric        float64 `yaml:"asymmetric"`
	NormaliseRotation float64 `yaml:"normalise_rotation"`
	CentreX           float64 `yaml:"centre_x"`
	Mirror            float64 `yaml:"mirror"`
}

type BossTypeSpec struct {
	Name                BossTypeName        `yaml:"name"`
	ComplexityCurve     Curve               `yaml:"complexity_curve"`
	WeaponQuantityCurve Curve               `yaml:"weapon_quantity_curve"`
	Multipliers         SymmetryMultipliers `yaml:"symmetry_multipliers"`
}

type ShapeSymmetry struct {
	Asymmetric        float64 `yaml:"asymmetric"`
	NormaliseRotation float64 `yaml:"normalise_rotation"`
	CentreX           float64 `yaml:"centre_x"`
	Mirror            float64 `yaml:"mirror"`
}

type ShapeTypeSpec struct {
	Name                  string        `yaml:"name"`
	TwoDimensionSize      bool          `yaml:"two_dimension_size"`
	GenerateRotation      bool          `yaml:"generate_rotation"`
	NearestSymmetricalRot float64       `yaml:"nearest_symmetrical_rot"`
	Symmetry              ShapeSymmetry `yaml:"symmetry"`
}

type WeaponSymmetry struct {
	Asymmetric float64 `yaml:"asymmetric"`
	CentreX    float64 `yaml:"centre_x"`
	Mirror     float64 `yaml:"mirror"`
}

type WeaponTypeSpec struct {
	Name          string         `yaml:"name"`
	Shape         string         `yaml:"shape"`
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Color         YAMLColor      `yaml:"color"`
	Orientations  OrientationSet `yaml:"orientations"`
	WieldableBy   BossTypeSet    `yaml:"wieldable_by"`
	GenerateColor bool           `yaml:"generate_color"`
	CanFloat      bool           `yaml:"can_float"`
	Symmetry      WeaponSymmetry `yaml:"symmetry"`
}

type ProjectileSpec struct {
	ScaleX              float64    `yaml:"scale_x"`
	ScaleY              float64    `yaml:"scale_y"`
	Color               *YAMLColor `yaml:"color"`
	TravelSpeed         float64    `yaml:"travel_speed"`
	RotationSpeed       float64    `yaml:"rotation_speed"`
	TracksPlayer        bool       `yaml:"tracks_player"`
	TrackingTime        float64    `yaml:"tracking_time"`
	TrackingStartupTime float64    `yaml:"tracking_startup_time"`
	SelfDestructTime    float64    `yaml:"self_destruct_time"`
}

type AttackTypeSpec struct {
	Name                 string         `yaml:"name"`
	DelayAfterAttack     float64        `yaml:"delay_after_attack"`
	RequiredOrientations OrientationSet `yaml:"required_orientations"`
	CompatibleBossTypes  BossTypeSet    `yaml:"compatible_boss_types"`
	ProjectilesPerShot   int            `yaml:"projectiles_per_shot"`
	ShotSpread           float64        `yaml:"shot_spread"`
	Projectile           ProjectileSpec `yaml:"projectile"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}

// NRGBA returns the colour, or fallback when unset.
func (c YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}
