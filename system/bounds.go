package system

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
	"github.com/lixenwraith/hydra/vmath"
)

// BoundsSystem reflects velocity at the field edges
// StayInBounds uses a buffered field and takes precedence over BounceWalls
type BoundsSystem struct {
	engine.SystemBase
}

// NewBoundsSystem creates a new bounds system
func NewBoundsSystem(world *engine.World) engine.System {
	return &BoundsSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BoundsSystem) Init()         {}
func (s *BoundsSystem) Name() string  { return "bounds" }
func (s *BoundsSystem) Priority() int { return parameter.PriorityBounds }

// Update re-expresses reflected velocity as speed and heading
func (s *BoundsSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component

	for _, e := range s.World.Query().With(c.StayInBounds).With(c.Position).With(c.Velocity).With(c.Angle).Execute() {
		s.reflect(e, parameter.BoundsBuffer)
	}
	for _, e := range s.World.Query().With(c.BounceWalls).With(c.Position).With(c.Velocity).With(c.Angle).Execute() {
		if c.StayInBounds.Has(e) {
			continue
		}
		s.reflect(e, 0)
	}
}

func (s *BoundsSystem) reflect(e core.Entity, buffer float64) {
	c := s.Component
	cfg := s.Resource.Config

	p := c.Position.MustGet(e).P
	vel := c.Velocity.MustGet(e)
	angle := c.Angle.MustGet(e)

	// Speed comes back non-negative and heading normalized even without a reflection
	v := vmath.Polar(vel.Speed, angle.Radians)
	v = physics.ReflectInBounds(p, v, cfg.FieldWidth, cfg.FieldHeight, buffer)
	vel.Speed, angle.Radians = physics.FromVelocity(v)
}
