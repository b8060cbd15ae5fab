package system

import (
	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
	"github.com/lixenwraith/hydra/vmath"
)

// FlockingSystem steers boids by cohesion, separation, and alignment
// Only TargetDir is written so speed never jumps
type FlockingSystem struct {
	engine.SystemBase

	weights physics.FlockWeights
}

// NewFlockingSystem creates a new flocking system
func NewFlockingSystem(world *engine.World) engine.System {
	return &FlockingSystem{
		SystemBase: engine.NewSystemBase(world),
		weights: physics.FlockWeights{
			Cohesion:  parameter.FlockCohesion,
			Avoidance: parameter.FlockSeparation,
			Alignment: parameter.FlockAlignment,
		},
	}
}

func (s *FlockingSystem) Init()         {}
func (s *FlockingSystem) Name() string  { return "flocking" }
func (s *FlockingSystem) Priority() int { return parameter.PriorityFlocking }

// Update recomputes the desired heading of every boid
func (s *FlockingSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component

	boids := s.World.Query().
		With(c.Flocking).
		With(c.Position).
		With(c.Velocity).
		With(c.Angle).
		Execute()
	obstacles := s.World.Query().With(c.Collidable).With(c.Position).Execute()

	const seen = parameter.FlockPerception * parameter.FlockPerception
	const near = parameter.FlockAvoidance * parameter.FlockAvoidance

	for _, e := range boids {
		self := c.Position.MustGet(e).P
		vel := vmath.Polar(c.Velocity.MustGet(e).Speed, c.Angle.MustGet(e).Radians)

		var flock physics.Flock
		for _, o := range boids {
			if o == e {
				continue
			}
			p := c.Position.MustGet(o).P
			if p.Dist2(self) < seen {
				flock.AddNeighbor(p, vmath.Polar(c.Velocity.MustGet(o).Speed, c.Angle.MustGet(o).Radians))
			}
		}

		for _, o := range obstacles {
			if o == e {
				continue
			}
			// Obstacles destroyed earlier this frame drop out here
			pos, ok := c.Position.Get(o)
			if ok && pos.P.Dist2(self) < near {
				flock.AddObstacle(self, pos.P)
			}
		}

		heading, ok := flock.Heading(self, vel, s.weights)
		if !ok {
			_, target, found := firstPlayer(&c)
			if !found {
				continue
			}
			heading = physics.Bearing(self, target)
		}
		c.TargetDir.Add(e, component.TargetDirComponent{Heading: heading})
	}
}
