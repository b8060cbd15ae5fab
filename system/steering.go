package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
)

// SteeringSystem slews headings toward TargetDir at a bounded rate
// There is no shortest-arc correction
type SteeringSystem struct {
	engine.SystemBase
}

// NewSteeringSystem creates a new steering system
func NewSteeringSystem(world *engine.World) engine.System {
	return &SteeringSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *SteeringSystem) Init()         {}
func (s *SteeringSystem) Name() string  { return "steering" }
func (s *SteeringSystem) Priority() int { return parameter.PrioritySteering }

// Update turns each steered entity by at most SteerRate*dt
func (s *SteeringSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component

	for _, e := range s.World.Query().With(c.Angle).With(c.TargetDir).Execute() {
		angle := c.Angle.MustGet(e)
		angle.Radians = physics.Slew(angle.Radians, c.TargetDir.MustGet(e).Heading, parameter.SteerRate, dt)
	}
}
