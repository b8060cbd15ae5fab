package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
	"github.com/lixenwraith/hydra/vmath"
)

// MovementSystem integrates positions, wraps the toroidal field, and applies knockback
type MovementSystem struct {
	engine.SystemBase
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) engine.System {
	return &MovementSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MovementSystem) Init()         {}
func (s *MovementSystem) Name() string  { return "movement" }
func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

// Update moves every entity with a velocity and heading
func (s *MovementSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component
	cfg := s.Resource.Config

	for _, e := range s.World.Query().With(c.Position).With(c.Velocity).With(c.Angle).Execute() {
		pos := c.Position.MustGet(e)
		pos.P = pos.P.Add(vmath.Polar(c.Velocity.MustGet(e).Speed, c.Angle.MustGet(e).Radians).Scale(dt))

		if c.ScreenWrap.Has(e) {
			pos.P = physics.WrapPosition(pos.P, cfg.FieldWidth, cfg.FieldHeight)
		}

		if bump, ok := c.Bump.Get(e); ok {
			offset, next, alive := physics.DecayBump(bump.Dir, bump.Speed, parameter.BumpDecay, dt)
			pos.P = pos.P.Add(offset)
			bump.Speed = next
			if !alive {
				c.Bump.Remove(e)
			}
		}
	}
}
