package system

import (
	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// OrdnanceSystem burns bomb fuses and turns spent bombs into blast waves
type OrdnanceSystem struct {
	engine.SystemBase
}

// NewOrdnanceSystem creates a new ordnance system
func NewOrdnanceSystem(world *engine.World) engine.System {
	s := &OrdnanceSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *OrdnanceSystem) Init() {}

// Name returns system's name
func (s *OrdnanceSystem) Name() string {
	return "ordnance"
}

// Priority returns the system's priority
func (s *OrdnanceSystem) Priority() int {
	return parameter.PriorityOrdnance
}

// Update detonates bombs whose fuse has run out
func (s *OrdnanceSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component

	for _, e := range s.World.Query().With(c.Bomb).With(c.Position).Execute() {
		bomb := c.Bomb.MustGet(e)
		bomb.Fuse -= dt
		if bomb.Fuse > 0 {
			continue
		}
		SpawnBlast(s.World, c.Position.MustGet(e).P, bomb.Owner)
		s.World.DestroyEntity(e)
		s.Resource.Audio.Player.PlayRandomSample(core.SoundBoom, core.SoundBoomVariants)
	}
}
