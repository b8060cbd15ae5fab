package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
)

// AccelerationSystem applies thrust against quadratic drag
type AccelerationSystem struct {
	engine.SystemBase
}

// NewAccelerationSystem creates a new acceleration system
func NewAccelerationSystem(world *engine.World) engine.System {
	return &AccelerationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *AccelerationSystem) Init()         {}
func (s *AccelerationSystem) Name() string  { return "acceleration" }
func (s *AccelerationSystem) Priority() int { return parameter.PriorityAcceleration }

// Update integrates speed for every accelerating entity
func (s *AccelerationSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component

	for _, e := range s.World.Query().With(c.Velocity).With(c.Acceleration).Execute() {
		vel := c.Velocity.MustGet(e)
		vel.Speed = physics.Accelerate(vel.Speed, c.Acceleration.MustGet(e).Accel, parameter.Drag, dt)
	}
}
