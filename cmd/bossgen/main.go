package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/milk9111/bossforge/generator"
	"github.com/milk9111/bossforge/physics"
	"github.com/milk9111/bossforge/prefabs"
	"github.com/milk9111/bossforge/raster"
)

func main() {
	seed := flag.Int64("seed", 0, "seed to replay (0 draws a fresh seed per run)")
	typeName := flag.String("type", "Random", "boss type: Random, Rocketship, FlyingSaucer, Starfighter, SpaceBattleship, AstroMonster")
	count := flag.Int("count", 1, "number of bosses to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent generators when -count > 1")
	outDir := flag.String("out", "out", "directory for the PNG preview and YAML spec of each boss")
	prefabDir := flag.String("prefabs", "prefabs", "directory whose tables override the embedded defaults (empty disables)")
	watch := flag.Bool("watch", false, "regenerate whenever a table or curve script changes")
	auto := flag.Bool("auto", false, "keep generating new bosses until interrupted")
	delay := flag.Duration("delay", 2*time.Second, "pause between runs with -auto")
	verbose := flag.Bool("v", false, "log every completed stage")
	flag.Parse()

	prefabs.SetDir(*prefabDir)

	bossType, err := prefabs.ParseBossTypeName(*typeName)
	if err != nil {
		log.Fatal(err)
	}
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := runConfig{
		catalog:    catalog,
		rasterizer: raster.NewRasterizer(),
		bossType:   bossType,
		seed:       *seed,
		outDir:     *outDir,
		verbose:    *verbose,
	}

	switch {
	case *watch:
		err = cfg.watch(ctx)
	case *auto:
		err = cfg.auto(ctx, *delay)
	default:
		err = cfg.batch(ctx, *count, *workers)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}

type runConfig struct {
	catalog    *prefabs.Catalog
	rasterizer *raster.Rasterizer
	bossType   prefabs.BossTypeName
	seed       int64
	outDir     string
	verbose    bool
}

func (c runConfig) newPipeline() (*generator.Pipeline, error) {
	return generator.New(generator.Options{
		Catalog:    c.catalog,
		Rasterizer: c.rasterizer,
		Oracle:     physics.NewWorld(0),
		Sink:       newLogSink(c.verbose),
		Seed:       c.seed,
		BossType:   c.bossType,
	})
}

// generateOne runs p once and writes its outputs. A zero seed means a fresh seed.
func (c runConfig) generateOne(ctx context.Context, p *generator.Pipeline, seed int64) error {
	if seed != 0 {
		p.SetSeed(seed)
	}
	spec, err := p.GenerateBossFight(ctx, seed == 0)
	if err != nil {
		return err
	}
	return writeBoss(c.outDir, spec)
}

// batch generates count bosses. Each goroutine owns its pipeline and collision world;
// the rasterizer cache is shared.
func (c runConfig) batch(ctx context.Context, count, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i := 0; i < count; i++ {
		seed := c.seed
		if seed != 0 {
			seed += int64(i)
		}
		g.Go(func() error {
			p, err := c.newPipeline()
			if err != nil {
				return err
			}
			return c.generateOne(ctx, p, seed)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("bossgen: generated %d bosses into %s (%d cached masks)", count, c.outDir, c.rasterizer.Len())
	return nil
}

func (c runConfig) auto(ctx context.Context, delay time.Duration) error {
	p, err := c.newPipeline()
	if err != nil {
		return err
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		if err := c.generateOne(ctx, p, 0); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// watch generates once, then replays the same seed every time the tables change so the
// effect of an edit can be compared directly.
func (c runConfig) watch(ctx context.Context) error {
	w, err := prefabs.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	p, err := c.newPipeline()
	if err != nil {
		return err
	}
	if err := c.generateOne(ctx, p, c.seed); err != nil {
		return err
	}
	seed := p.Seed()
	log.Printf("bossgen: watching %s, replaying seed %d on change", prefabs.Dir(), seed)

	w.Reload(ctx, func(catalog *prefabs.Catalog, err error) {
		if err != nil {
			log.Printf("bossgen: reload: %v", err)
			return
		}
		if err := p.SetCatalog(catalog); err != nil {
			log.Printf("bossgen: reload: %v", err)
			return
		}
		c.rasterizer.Flush()
		if err := c.generateOne(ctx, p, seed); err != nil {
			log.Printf("bossgen: regenerate: %v", err)
		}
	})
	return ctx.Err()
}
