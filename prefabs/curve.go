package prefabs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Keyframe is one (time, value) point of a Curve.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Curve maps a probability draw in [0,1) to a content quantity. It is either a list of
// keyframes evaluated piecewise-linearly, or a tengo script reading `x` and assigning `y`.
type Curve struct {
	Keys   []Keyframe `yaml:"keys,omitempty"`
	Script string     `yaml:"script,omitempty"`

	compiled *scriptCurve
}

// Empty reports whether the curve has nothing to evaluate.
func (c *Curve) Empty() bool {
	return c == nil || (len(c.Keys) == 0 && strings.TrimSpace(c.Script) == "")
}

// Evaluate returns the curve value at t.
func (c *Curve) Evaluate(t float64) (float64, error) {
	if c.Empty() {
		return 0, fmt.Errorf("prefabs: evaluate empty curve")
	}
	if strings.TrimSpace(c.Script) != "" {
		if c.compiled == nil {
			sc, err := compileScriptCurve(c.Script)
			if err != nil {
				return 0, err
			}
			c.compiled = sc
		}
		return c.compiled.eval(t)
	}
	return evaluateKeys(c.Keys, t), nil
}

// Prepare compiles a scripted curve ahead of use so that concurrent generators never
// race on the lazy compile.
func (c *Curve) Prepare() error {
	if c.Empty() || strings.TrimSpace(c.Script) == "" || c.compiled != nil {
		return nil
	}
	sc, err := compileScriptCurve(c.Script)
	if err != nil {
		return err
	}
	c.compiled = sc
	return nil
}

// ConstantCurve always evaluates to v.
func ConstantCurve(v float64) Curve {
	return Curve{Keys: []Keyframe{{Time: 0, Value: v}}}
}

func evaluateKeys(keys []Keyframe, t float64) float64 {
	if len(keys) == 1 {
		return keys[0].Value
	}
	sorted := keys
	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i].Time < keys[j].Time }) {
		sorted = append([]Keyframe(nil), keys...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	}
	if t <= sorted[0].Time {
		return sorted[0].Value
	}
	last := sorted[len(sorted)-1]
	if t >= last.Time {
		return last.Value
	}
	for i := 1; i < len(sorted); i++ {
		a, b := sorted[i-1], sorted[i]
		if t > b.Time {
			continue
		}
		span := b.Time - a.Time
		if span <= 0 {
			return b.Value
		}
		return a.Value + (t-a.Time)/span*(b.Value-a.Value)
	}
	return last.Value
}

type scriptCurve struct {
	mu       sync.Mutex
	path     string
	compiled *tengo.Compiled
}

func compileScriptCurve(path string) (*scriptCurve, error) {
	src, err := LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load curve script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile curve script %s: %w", path, err)
	}
	return &scriptCurve{path: path, compiled: compiled}, nil
}

func (sc *scriptCurve) eval(t float64) (float64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if err := sc.compiled.Set("x", t); err != nil {
		return 0, err
	}
	if err := sc.compiled.Run(); err != nil {
		return 0, fmt.Errorf("prefabs: run curve script %s: %w", sc.path, err)
	}
	v := sc.compiled.Get("y")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("prefabs: curve script %s: y is %s, want number", sc.path, v.ValueType())
	}
}
