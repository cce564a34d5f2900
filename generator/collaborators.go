package generator

import (
	"image"

	"github.com/milk9111/bossforge/raster"
)

// ShapeRasterizer turns a primitive into a coverage mask in canvas coordinates.
type ShapeRasterizer interface {
	Rasterize(shape string, t raster.Transform) (*image.Alpha, error)
}

// CollisionOracle answers the placement questions asked during WeaponGen.
type CollisionOracle interface {
	SetBody(img image.Image) error
	RaycastHitsBody(origin, dir Vec2) bool
	Overlaps(b Bounds) bool
	AddWeapon(b Bounds)
	Clear()
}

// Sink observes the spec as it is built. Observe runs with the pipeline locked and must
// not call back into it.
type Sink interface {
	Observe(state State, spec *BossSpec)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(State, *BossSpec)

func (f SinkFunc) Observe(state State, spec *BossSpec) {
	f(state, spec)
}

type nopSink struct{}

func (nopSink) Observe(State, *BossSpec) {}
