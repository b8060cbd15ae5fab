package game

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/vmath"
)

type star struct {
	p     vmath.Vec2
	layer int
	color core.Color
}

// Starfield is a parallax backdrop; deeper layers drift slower
// The same seed always produces the same sky
type Starfield struct {
	stars  []star
	width  float64
	offset float64
}

// NewStarfield scatters count stars over a width x height field
func NewStarfield(seed uint64, count int, width, height float64) *Starfield {
	rng := rand.New(rand.NewPCG(seed, seed))

	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			p:     vmath.Vec2{X: rng.Float64() * width, Y: rng.Float64() * height},
			layer: 1 + rng.IntN(parameter.StarMaxLayer),
			color: core.HSL(rng.Float64()*parameter.StarHue, 1, parameter.StarLight),
		}
	}
	return &Starfield{stars: stars, width: width}
}

// Update scrolls the field by dt seconds
func (s *Starfield) Update(dt float64) {
	s.offset += dt
}

// Draw plots every star at its scrolled position
func (s *Starfield) Draw(r engine.Renderer) {
	for _, st := range s.stars {
		x := math.Mod(st.p.X+s.offset*float64(st.layer)*parameter.StarDrift, s.width)
		r.DrawPixel(vmath.Vec2{X: x, Y: st.p.Y}, st.color)
	}
}
