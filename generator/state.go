package generator

// State is a pipeline stage. Each Step runs the stage named by the current state and
// advances to the next one.
type State int

const (
	Idle State = iota
	SeedInit
	TypeSelect
	PaletteGen
	SpriteGen
	CollisionGen
	WeaponGen
	AttackGen
	AttackSequence
	MovementGen
	MovementSequence
	StatGen
	Ready
)

var stateNames = [...]string{
	"Idle",
	"SeedInit",
	"TypeSelect",
	"PaletteGen",
	"SpriteGen",
	"CollisionGen",
	"WeaponGen",
	"AttackGen",
	"AttackSequence",
	"MovementGen",
	"MovementSequence",
	"StatGen",
	"Ready",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Running reports whether a run is between Begin and Ready.
func (s State) Running() bool {
	return s != Idle && s != Ready
}
