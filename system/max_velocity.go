package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
)

// MaxVelocitySystem clamps forward speed
type MaxVelocitySystem struct {
	engine.SystemBase
}

// NewMaxVelocitySystem creates a new max velocity system
func NewMaxVelocitySystem(world *engine.World) engine.System {
	return &MaxVelocitySystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MaxVelocitySystem) Init()         {}
func (s *MaxVelocitySystem) Name() string  { return "max_velocity" }
func (s *MaxVelocitySystem) Priority() int { return parameter.PriorityMaxVelocity }

// Update applies the cap; a zero cap falls back to the default
func (s *MaxVelocitySystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component

	for _, e := range s.World.Query().With(c.Velocity).With(c.MaxVelocity).Execute() {
		limit := c.MaxVelocity.MustGet(e).Cap
		if limit == 0 {
			limit = parameter.DefaultMaxVelocity
		}
		vel := c.Velocity.MustGet(e)
		vel.Speed = physics.CapSpeed(vel.Speed, limit)
	}
}
