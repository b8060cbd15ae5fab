package physics

import (
	"math"

	"github.com/lixenwraith/hydra/vmath"
)

// Wrap folds v into [0, size] toroidally; values already on the field are untouched
func Wrap(v, size float64) float64 {
	if size <= 0 || (v >= 0 && v <= size) {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// WrapPosition applies Wrap on both axes
func WrapPosition(p vmath.Vec2, width, height float64) vmath.Vec2 {
	return vmath.Vec2{X: Wrap(p.X, width), Y: Wrap(p.Y, height)}
}

// ReflectInBounds points velocity components back inside field shrunk by buffer on every side
// Components already heading inward keep their sign
func ReflectInBounds(p, v vmath.Vec2, width, height, buffer float64) vmath.Vec2 {
	if p.X < buffer {
		v.X = math.Abs(v.X)
	}
	if p.X > width-buffer {
		v.X = -math.Abs(v.X)
	}
	if p.Y < buffer {
		v.Y = math.Abs(v.Y)
	}
	if p.Y > height-buffer {
		v.Y = -math.Abs(v.Y)
	}
	return v
}
