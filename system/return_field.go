package system

import (
	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
)

// ReturnToFieldSystem steers strays back toward the field center
type ReturnToFieldSystem struct {
	engine.SystemBase
}

// NewReturnToFieldSystem creates a new return to field system
func NewReturnToFieldSystem(world *engine.World) engine.System {
	return &ReturnToFieldSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *ReturnToFieldSystem) Init()         {}
func (s *ReturnToFieldSystem) Name() string  { return "return_to_field" }
func (s *ReturnToFieldSystem) Priority() int { return parameter.PriorityReturnToField }

// Update overrides TargetDir for entities outside the field
func (s *ReturnToFieldSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component
	field := s.Resource.Config.Field()
	center := field.Center()

	for _, e := range s.World.Query().With(c.ReturnToField).With(c.Position).Execute() {
		p := c.Position.MustGet(e).P
		if field.Outside(p) {
			c.TargetDir.Add(e, component.TargetDirComponent{Heading: physics.Bearing(p, center)})
		}
	}
}
