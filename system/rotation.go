package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// RotationSystem turns headings at their fixed rate
type RotationSystem struct {
	engine.SystemBase
}

// NewRotationSystem creates a new rotation system
func NewRotationSystem(world *engine.World) engine.System {
	return &RotationSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *RotationSystem) Init()         {}
func (s *RotationSystem) Name() string  { return "rotation" }
func (s *RotationSystem) Priority() int { return parameter.PriorityRotation }

// Update advances the heading of every rotating entity
func (s *RotationSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component

	for _, e := range s.World.Query().With(c.Angle).With(c.Rotation).Execute() {
		c.Angle.MustGet(e).Radians += c.Rotation.MustGet(e).Rate * dt
	}
}
