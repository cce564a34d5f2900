// Package generator builds a complete boss spec from a seed through a fixed sequence of
// stages driven by Pipeline.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/milk9111/bossforge/physics"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/raster"
	"github.com/milk9111/bossforge/rng"
)

// Options wires a Pipeline. Catalog is required; a nil Rasterizer, Oracle or Sink falls
// back to raster.NewRasterizer, physics.NewWorld and a no-op sink.
type Options struct {
	Catalog    *prefabs.Catalog
	Rasterizer ShapeRasterizer
	Oracle     CollisionOracle
	Sink       Sink
	Seed       int64
	BossType   prefabs.BossTypeName
}

// Pipeline runs one generation at a time. All methods are safe for concurrent use; a
// second run started while one is active is rejected with ErrGenerationInProgress.
type Pipeline struct {
	mu sync.Mutex

	catalog *prefabs.Catalog
	raster  ShapeRasterizer
	oracle  CollisionOracle
	sink    Sink

	state    State
	seed     int64
	bossType prefabs.BossTypeName

	rng       *rng.Source
	spec      *BossSpec
	bossTable *prefabs.BossTypeSpec
}

func New(opts Options) (*Pipeline, error) {
	if err := checkCatalog(opts.Catalog); err != nil {
		return nil, err
	}
	p := &Pipeline{
		catalog:  opts.Catalog,
		raster:   opts.Rasterizer,
		oracle:   opts.Oracle,
		sink:     opts.Sink,
		seed:     opts.Seed,
		bossType: opts.BossType,
		rng:      rng.New(opts.Seed),
		spec:     &BossSpec{},
	}
	if p.raster == nil {
		p.raster = raster.NewRasterizer()
	}
	if p.oracle == nil {
		p.oracle = physics.NewWorld(0)
	}
	if p.sink == nil {
		p.sink = nopSink{}
	}
	return p, nil
}

// checkCatalog rejects tables that would fail partway through every run.
func checkCatalog(c *prefabs.Catalog) error {
	if c == nil {
		return errors.New("generator: nil catalog")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	for _, name := range c.Generator.Movement.VelocityCurves {
		if _, ok := velocityCurves[name]; !ok {
			return &ConfigError{Stage: MovementGen, Detail: "velocity_curves", Err: fmt.Errorf("%w: %q", ErrUnknownVelocityCurve, name)}
		}
	}
	for _, s := range c.Shapes {
		if !raster.HasShape(s.Name) {
			return &ConfigError{Stage: SpriteGen, Detail: "shapes", Err: fmt.Errorf("%w: %q", ErrUnknownShape, s.Name)}
		}
	}
	for _, w := range c.Weapons {
		if !raster.HasShape(w.Shape) {
			return &ConfigError{Stage: WeaponGen, Detail: "weapon " + w.Name, Err: fmt.Errorf("%w: %q", ErrUnknownShape, w.Shape)}
		}
	}
	return nil
}

// SetCatalog swaps the content tables used by the next run.
func (p *Pipeline) SetCatalog(c *prefabs.Catalog) error {
	if err := checkCatalog(c); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Running() {
		return ErrGenerationInProgress
	}
	p.catalog = c
	return nil
}

// SetSeed stores the seed the next Begin(false) replays.
func (p *Pipeline) SetSeed(seed int64) {
	p.mu.Lock()
	p.seed = seed
	p.mu.Unlock()
}

func (p *Pipeline) Seed() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seed
}

// SetBossType selects the archetype for the next run. Random lets TypeSelect choose.
func (p *Pipeline) SetBossType(name prefabs.BossTypeName) {
	p.mu.Lock()
	p.bossType = name
	p.mu.Unlock()
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Spec returns the spec of the current or last run.
func (p *Pipeline) Spec() *BossSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spec
}

// Begin retires the previous run and enters SeedInit. With useNewSeed a fresh seed
// replaces the stored one.
func (p *Pipeline) Begin(useNewSeed bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Running() {
		return ErrGenerationInProgress
	}
	if useNewSeed {
		p.seed = rng.NewSeed()
	}
	p.retire()
	p.state = SeedInit
	return nil
}

// Abort retires any partial run and returns to Idle.
func (p *Pipeline) Abort() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.Running() {
		return
	}
	log.Printf("generator: run aborted in %s", p.state)
	p.reset()
}

// GenerateBossFight runs a full generation and returns the finished spec.
func (p *Pipeline) GenerateBossFight(ctx context.Context, useNewSeed bool) (*BossSpec, error) {
	if err := p.Begin(useNewSeed); err != nil {
		return nil, err
	}
	for {
		state, err := p.Step(ctx)
		if err != nil {
			return nil, err
		}
		if state == Ready {
			return p.Spec(), nil
		}
	}
}

// Step runs the current stage, publishes the spec to the sink and returns the new state.
// A failed or cancelled stage retires the partial run and leaves the pipeline Idle.
func (p *Pipeline) Step(ctx context.Context) (State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.Running() {
		return p.state, ErrNotStarted
	}
	if err := ctx.Err(); err != nil {
		p.reset()
		return p.state, err
	}

	stage := p.state
	if err := p.runStage(ctx, stage); err != nil {
		var cfg *ConfigError
		if errors.As(err, &cfg) {
			log.Printf("generator: %v", err)
		}
		p.reset()
		return p.state, err
	}
	p.state = stage + 1
	p.sink.Observe(stage, p.spec)
	if p.state == Ready {
		p.sink.Observe(Ready, p.spec)
	}
	return p.state, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage State) error {
	switch stage {
	case SeedInit:
		p.rng.Reseed(p.seed)
		p.spec.Seed = p.seed
	case TypeSelect:
		return p.selectBossType()
	case PaletteGen:
		p.generatePalette()
	case SpriteGen:
		return p.generateSprite(ctx)
	case CollisionGen:
		if err := p.oracle.SetBody(p.spec.Sprite); err != nil {
			return fmt.Errorf("generator: collision: %w", err)
		}
	case WeaponGen:
		return p.generateWeapons(ctx)
	case AttackGen:
		p.generateAttacks()
	case AttackSequence:
		p.generateAttackSequence()
	case MovementGen:
		return p.generateMovement()
	case MovementSequence:
		p.generateMovementSequence()
	case StatGen:
		p.generateStats()
	default:
		return fmt.Errorf("generator: no stage for state %s", stage)
	}
	return nil
}

func (p *Pipeline) selectBossType() error {
	name := p.bossType
	if name == prefabs.Random {
		scale := p.catalog.Generator.Scales.BossType
		draw := p.rng.Value(scale)
		name = prefabs.BossTypeName(int(float64(draw)/float64(scale)*float64(prefabs.BossTypeCount-1)) + 1)
	}
	bt, ok := p.catalog.BossType(name)
	if !ok {
		return &ConfigError{Stage: TypeSelect, Detail: name.String(), Err: ErrMissingBossType}
	}
	p.bossTable = bt
	p.spec.BossType = name
	return nil
}

// retire drops the previous run from the oracle and starts a fresh spec.
func (p *Pipeline) retire() {
	p.oracle.Clear()
	p.spec = &BossSpec{Seed: p.seed}
	p.bossTable = nil
}

func (p *Pipeline) reset() {
	p.oracle.Clear()
	p.spec.Weapons = nil
	p.spec.Attacks = nil
	p.spec.AttackSequence = nil
	p.spec.MovementPatterns = nil
	p.spec.MovementSequence = nil
	p.state = Idle
}
