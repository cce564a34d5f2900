package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BossTypeName identifies a catalogued boss archetype.
type BossTypeName int

const (
	Random BossTypeName = iota
	Rocketship
	FlyingSaucer
	Starfighter
	SpaceBattleship
	AstroMonster
)

var bossTypeNames = []string{
	"Random",
	"Rocketship",
	"FlyingSaucer",
	"Starfighter",
	"SpaceBattleship",
	"AstroMonster",
}

// BossTypeCount includes the Random sentinel.
const BossTypeCount = 6

func (n BossTypeName) String() string {
	if n < 0 || int(n) >= len(bossTypeNames) {
		return fmt.Sprintf("BossTypeName(%d)", int(n))
	}
	return bossTypeNames[n]
}

// ParseBossTypeName is case-insensitive.
func ParseBossTypeName(s string) (BossTypeName, error) {
	s = strings.TrimSpace(s)
	for i, name := range bossTypeNames {
		if strings.EqualFold(name, s) {
			return BossTypeName(i), nil
		}
	}
	return Random, fmt.Errorf("prefabs: unknown boss type %q", s)
}

func (n *BossTypeName) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("boss type must be a string")
	}
	parsed, err := ParseBossTypeName(value.Value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n BossTypeName) MarshalYAML() (any, error) {
	return n.String(), nil
}

// BossTypeSet is a bitmask with bit i set for BossTypeName(i).
type BossTypeSet uint32

func NewBossTypeSet(names ...BossTypeName) BossTypeSet {
	var s BossTypeSet
	for _, n := range names {
		s |= 1 << uint(n)
	}
	return s
}

func (s BossTypeSet) Has(n BossTypeName) bool {
	mask := BossTypeSet(1) << uint(n)
	return s&mask == mask
}

func (s *BossTypeSet) UnmarshalYAML(value *yaml.Node) error {
	names, err := decodeNameList(value)
	if err != nil {
		return fmt.Errorf("boss type set: %w", err)
	}
	var out BossTypeSet
	for _, name := range names {
		n, err := ParseBossTypeName(name)
		if err != nil {
			return err
		}
		out |= NewBossTypeSet(n)
	}
	*s = out
	return nil
}

func (s BossTypeSet) MarshalYAML() (any, error) {
	var out []string
	for i := range bossTypeNames {
		if s.Has(BossTypeName(i)) {
			out = append(out, bossTypeNames[i])
		}
	}
	return out, nil
}

// OrientationMode controls how a weapon is rotated once mounted.
type OrientationMode int

const (
	FixedForward OrientationMode = iota
	FixedSideways
	FixedObliqueForward
	FixedOblique
	Rotatable
	NonOriented
)

var orientationNames = []string{
	"FixedForward",
	"FixedSideways",
	"FixedObliqueForward",
	"FixedOblique",
	"Rotatable",
	"NonOriented",
}

const OrientationModeCount = 6

func (m OrientationMode) String() string {
	if m < 0 || int(m) >= len(orientationNames) {
		return fmt.Sprintf("OrientationMode(%d)", int(m))
	}
	return orientationNames[m]
}

// PositionDependent reports whether the final rotation depends on which side of the
// body the weapon sits, which rules the mode out for centred weapons.
func (m OrientationMode) PositionDependent() bool {
	return m == FixedSideways || m == FixedObliqueForward || m == FixedOblique
}

func ParseOrientationMode(s string) (OrientationMode, error) {
	s = strings.TrimSpace(s)
	for i, name := range orientationNames {
		if strings.EqualFold(name, s) {
			return OrientationMode(i), nil
		}
	}
	return FixedForward, fmt.Errorf("prefabs: unknown orientation mode %q", s)
}

func (m *OrientationMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("orientation mode must be a string")
	}
	parsed, err := ParseOrientationMode(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m OrientationMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// OrientationSet is a bitmask with bit i set for OrientationMode(i).
type OrientationSet uint32

func NewOrientationSet(modes ...OrientationMode) OrientationSet {
	var s OrientationSet
	for _, m := range modes {
		s |= 1 << uint(m)
	}
	return s
}

func (s OrientationSet) Has(m OrientationMode) bool {
	mask := OrientationSet(1) << uint(m)
	return s&mask == mask
}

func (s OrientationSet) Empty() bool {
	return s == 0
}

func (s *OrientationSet) UnmarshalYAML(value *yaml.Node) error {
	names, err := decodeNameList(value)
	if err != nil {
		return fmt.Errorf("orientation set: %w", err)
	}
	var out OrientationSet
	for _, name := range names {
		m, err := ParseOrientationMode(name)
		if err != nil {
			return err
		}
		out |= NewOrientationSet(m)
	}
	*s = out
	return nil
}

func (s OrientationSet) MarshalYAML() (any, error) {
	var out []string
	for i := range orientationNames {
		if s.Has(OrientationMode(i)) {
			out = append(out, orientationNames[i])
		}
	}
	return out, nil
}

func decodeNameList(value *yaml.Node) ([]string, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if strings.TrimSpace(value.Value) == "" {
			return nil, nil
		}
		return []string{value.Value}, nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return nil, err
		}
		return names, nil
	default:
		return nil, fmt.Errorf("expected a name or a list of names")
	}
}
