package common

// Vec2 is a point or direction in body-local pixels, origin at the body centre, y down.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Bounds is an axis-aligned box; X and Y are the top-left corner.
type Bounds struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// BoundsAround centres a w×h box on c.
func BoundsAround(c Vec2, w, h float64) Bounds {
	return Bounds{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (b Bounds) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Intersects reports a strictly positive overlap area; touching edges do not count.
func (b Bounds) Intersects(o Bounds) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W && b.Y < o.Y+o.H && o.Y < b.Y+b.H
}
