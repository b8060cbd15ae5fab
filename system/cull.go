package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// CullSystem destroys KillOffScreen entities that have left the field
// Points on the field edge are kept
type CullSystem struct {
	engine.SystemBase
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CullSystem) Init()         {}
func (s *CullSystem) Name() string  { return "cull" }
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Update removes out-of-field entities
func (s *CullSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component
	field := s.Resource.Config.Field()

	for _, e := range s.World.Query().With(c.KillOffScreen).With(c.Position).Execute() {
		if field.Outside(c.Position.MustGet(e).P) {
			s.World.DestroyEntity(e)
		}
	}
}
