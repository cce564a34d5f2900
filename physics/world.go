// Package physics answers the collision questions asked while weapons are placed.
package physics

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"

	"github.com/milk9111/bossforge/common"
)

const collisionTypeBody cp.CollisionType = 1

const (
	tagWeapon = "weapon"
	tagProbe  = "probe"

	defaultCellSize     = 4
	defaultWeaponExtent = 1024
	weaponSpaceCellSize = 32
	solidAlphaThreshold = 128
)

// World holds the boss body as static Chipmunk boxes and the placed weapons in a resolv
// space. Coordinates are body-local pixels with the origin at the texture centre.
type World struct {
	space      *cp.Space
	bodyShapes int
	cellSize   int

	weapons      *resolv.Space
	weaponObjs   []*resolv.Object
	probe        *resolv.Object
	weaponOffset float64
}

// NewWorld returns an empty world. cellSize is the side, in pixels, of the grid the body
// alpha is sampled on; values below 1 use the default.
func NewWorld(cellSize int) *World {
	if cellSize < 1 {
		cellSize = defaultCellSize
	}
	w := &World{cellSize: cellSize, space: cp.NewSpace()}
	w.resetWeaponSpace(defaultWeaponExtent)
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// BodyShapes reports how many static boxes make up the body.
func (w *World) BodyShapes() int {
	if w == nil {
		return 0
	}
	return w.bodyShapes
}

// SetBody replaces the body geometry with boxes covering the solid pixels of img. Placed
// weapons are dropped as well, since their space is sized from the body.
func (w *World) SetBody(img image.Image) error {
	if w == nil {
		return fmt.Errorf("physics: set body on nil world")
	}
	if img == nil {
		return fmt.Errorf("physics: set body: nil image")
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("physics: set body: empty image")
	}

	w.space = cp.NewSpace()
	w.bodyShapes = 0

	cols := (b.Dx() + w.cellSize - 1) / w.cellSize
	rows := (b.Dy() + w.cellSize - 1) / w.cellSize
	solid := make([]bool, cols*rows)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 < solidAlphaThreshold {
				continue
			}
			solid[((y-b.Min.Y)/w.cellSize)*cols+(x-b.Min.X)/w.cellSize] = true
		}
	}

	originX := float64(b.Dx()) / 2
	originY := float64(b.Dy()) / 2
	w.processCells(solid, cols, rows, originX, originY)

	w.resetWeaponSpace(math.Max(float64(b.Dx()), float64(b.Dy())))
	return nil
}

// processCells merges solid cells greedily into rectangles, growing right then down,
// and adds one static box per rectangle.
func (w *World) processCells(solid []bool, cols, rows int, originX, originY float64) {
	processed := make([]bool, cols*rows)
	size := float64(w.cellSize)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if processed[idx] {
				continue
			}
			if !solid[idx] {
				processed[idx] = true
				continue
			}

			cw := 1
			for x+cw < cols {
				idx2 := y*cols + (x + cw)
				if processed[idx2] || !solid[idx2] {
					break
				}
				cw++
			}

			ch := 1
		heightLoop:
			for y+ch < rows {
				for xi := x; xi < x+cw; xi++ {
					idx2 := (y+ch)*cols + xi
					if processed[idx2] || !solid[idx2] {
						break heightLoop
					}
				}
				ch++
			}

			x0 := float64(x)*size - originX
			y0 := float64(y)*size - originY
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(cw)*size, T: y0 + float64(ch)*size}
			shape := cp.NewBox2(w.space.StaticBody, bb, 0)
			shape.SetCollisionType(collisionTypeBody)
			w.space.AddShape(shape)
			w.bodyShapes++

			for yy := y; yy < y+ch; yy++ {
				for xx := x; xx < x+cw; xx++ {
					processed[yy*cols+xx] = true
				}
			}
		}
	}
}

// RaycastHitsBody reports whether origin lies on the body or the segment from origin to
// origin+dir crosses it.
func (w *World) RaycastHitsBody(origin, dir common.Vec2) bool {
	if w == nil || w.space == nil || w.bodyShapes == 0 {
		return false
	}
	o := cp.Vector{X: origin.X, Y: origin.Y}
	if info := w.space.PointQueryNearest(o, 0, cp.SHAPE_FILTER_ALL); info != nil && info.Shape != nil && info.Distance <= 0 {
		return true
	}
	end := o.Add(cp.Vector{X: dir.X, Y: dir.Y})
	hit := w.space.SegmentQueryFirst(o, end, 0, cp.SHAPE_FILTER_ALL)
	return hit.Shape != nil
}

// Overlaps reports whether b overlaps any placed weapon.
func (w *World) Overlaps(b common.Bounds) bool {
	if w == nil || len(w.weaponObjs) == 0 {
		return false
	}
	w.probe.X = b.X + w.weaponOffset
	w.probe.Y = b.Y + w.weaponOffset
	w.probe.W = b.W
	w.probe.H = b.H
	w.probe.Update()

	check := w.probe.Check(0, 0, tagWeapon)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tagWeapon) {
		ob := common.Bounds{X: other.X - w.weaponOffset, Y: other.Y - w.weaponOffset, W: other.W, H: other.H}
		if ob.Intersects(b) {
			return true
		}
	}
	return false
}

// AddWeapon registers a placed weapon's bounds.
func (w *World) AddWeapon(b common.Bounds) {
	if w == nil {
		return
	}
	obj := resolv.NewObject(b.X+w.weaponOffset, b.Y+w.weaponOffset, b.W, b.H, tagWeapon)
	w.weapons.Add(obj)
	w.weaponObjs = append(w.weaponObjs, obj)
}

// Weapons reports how many weapons are registered.
func (w *World) Weapons() int {
	if w == nil {
		return 0
	}
	return len(w.weaponObjs)
}

// Clear retires every placed weapon. The body is kept.
func (w *World) Clear() {
	if w == nil {
		return
	}
	if len(w.weaponObjs) > 0 {
		w.weapons.Remove(w.weaponObjs...)
		w.weaponObjs = nil
	}
}

func (w *World) resetWeaponSpace(extent float64) {
	if len(w.weaponObjs) > 0 {
		log.Printf("physics: dropping %d weapons with the old body", len(w.weaponObjs))
	}
	w.weaponObjs = nil

	// Weapons may sit past the body edge, so the space spans twice the body extent on
	// each side of the origin.
	w.weaponOffset = 2 * extent
	size := int(math.Ceil(4 * extent))
	w.weapons = resolv.NewSpace(size, size, weaponSpaceCellSize, weaponSpaceCellSize)
	w.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	w.weapons.Add(w.probe)
}
