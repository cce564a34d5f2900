package generator

import (
	"log"

	"github.com/milk9111/bossforge/prefabs"
)

// AttackInstance is an attack in the boss's repertoire. Weapon is the bound weapon or
// -1; Weapons lists every weapon the attack fires from, including the bound weapon's twin.
type AttackInstance struct {
	Name               string                 `yaml:"name"`
	Weapon             int                    `yaml:"weapon"`
	Weapons            []int                  `yaml:"weapons,omitempty"`
	DelayAfterAttack   float64                `yaml:"delay_after_attack"`
	ProjectilesPerShot int                    `yaml:"projectiles_per_shot"`
	ShotSpread         float64                `yaml:"shot_spread"`
	Projectile         prefabs.ProjectileSpec `yaml:"projectile"`
}

// FiringAngles returns the offset in degrees of each projectile in one shot, spread
// evenly around the weapon's facing.
func (a AttackInstance) FiringAngles() []float64 {
	n := a.ProjectilesPerShot
	if n <= 0 {
		return nil
	}
	angles := make([]float64, n)
	for j := range angles {
		angle := float64(j)*a.ShotSpread - float64(n/2)*a.ShotSpread
		if n%2 == 0 {
			angle += a.ShotSpread / 2
		}
		angles[j] = angle
	}
	return angles
}

func (p *Pipeline) generateAttacks() {
	gen := p.catalog.Generator
	qmax := gen.Attacks.QuantityMax
	lo := min(max(len(p.spec.Weapons), 1), qmax-1)
	quantity := p.rng.Int(lo, qmax)

	for slot := 0; slot < quantity; slot++ {
		at, ok := p.pickAttackType()
		if !ok {
			log.Printf("generator: attack %d: no type compatible with %s after %d attempts", slot, p.spec.BossType, gen.Attempts.AttackType)
			continue
		}

		inst := AttackInstance{
			Name:               at.Name,
			Weapon:             -1,
			DelayAfterAttack:   at.DelayAfterAttack,
			ProjectilesPerShot: at.ProjectilesPerShot,
			ShotSpread:         at.ShotSpread,
			Projectile:         at.Projectile,
		}
		if !at.RequiredOrientations.Empty() {
			wi, ok := p.pickAttackWeapon(at)
			if !ok {
				log.Printf("generator: attack %d (%s): no weapon with a required orientation", slot, at.Name)
				continue
			}
			inst.Weapon = wi
			inst.Weapons = []int{wi}
			if twin := p.spec.Weapons[wi].MirrorOf; twin >= 0 {
				inst.Weapons = append(inst.Weapons, twin)
			}
		}
		p.spec.Attacks = append(p.spec.Attacks, inst)
	}
}

func (p *Pipeline) pickAttackType() (*prefabs.AttackTypeSpec, bool) {
	attacks := p.catalog.Attacks
	if len(attacks) == 0 {
		return nil, false
	}
	for attempt := 0; attempt < p.catalog.Generator.Attempts.AttackType; attempt++ {
		at := &attacks[p.rng.Int(0, len(attacks))]
		if at.CompatibleBossTypes.Has(p.spec.BossType) {
			return at, true
		}
	}
	return nil, false
}

func (p *Pipeline) pickAttackWeapon(at *prefabs.AttackTypeSpec) (int, bool) {
	weapons := p.spec.Weapons
	if len(weapons) == 0 {
		return -1, false
	}
	for attempt := 0; attempt < p.catalog.Generator.Attempts.AttackWeapon; attempt++ {
		wi := p.rng.Int(0, len(weapons))
		if at.RequiredOrientations.Has(weapons[wi].Orientation) {
			return wi, true
		}
	}
	return -1, false
}

// sequence fills a sequence of indices into a repertoire of n entries. The length is at
// least max(n, lo) and below hi.
func (p *Pipeline) sequence(n, lo, hi int) []int {
	if n == 0 {
		return nil
	}
	length := p.rng.Int(max(n, lo), hi)
	seq := make([]int, length)
	for i := range seq {
		seq[i] = p.rng.Int(0, n)
	}
	return seq
}

func (p *Pipeline) generateAttackSequence() {
	limits := p.catalog.Generator.Attacks
	p.spec.AttackSequence = p.sequence(len(p.spec.Attacks), limits.SequenceLengthMin, limits.SequenceLengthMax)
}
