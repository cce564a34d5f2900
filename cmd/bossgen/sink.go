package main

import (
	"log"

	"github.com/milk9111/bossforge/generator"
)

type logSink struct {
	verbose bool
}

func newLogSink(verbose bool) generator.Sink {
	return logSink{verbose: verbose}
}

func (s logSink) Observe(state generator.State, spec *generator.BossSpec) {
	switch {
	case state == generator.Ready:
		log.Printf("bossgen: seed %d: %s with %d shapes, %d weapons, %d attacks, %d movement patterns",
			spec.Seed, spec.BossType, len(spec.Shapes), len(spec.Weapons), len(spec.Attacks), len(spec.MovementPatterns))
	case s.verbose:
		log.Printf("bossgen: seed %d: %s done", spec.Seed, state)
	}
}
