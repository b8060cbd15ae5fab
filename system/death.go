package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
)

// DeathSystem resolves every entity whose health has fallen to zero or below
// Each dead entity is handled once and destroyed in the same frame
type DeathSystem struct {
	engine.SystemBase

	statKilled *atomic.Int64
}

// NewDeathSystem creates a new death system
func NewDeathSystem(world *engine.World) engine.System {
	s := &DeathSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statKilled = s.Resource.Status.Counters.Get(status.DeathKilled)
	return s
}

func (s *DeathSystem) Init()         {}
func (s *DeathSystem) Name() string  { return "death" }
func (s *DeathSystem) Priority() int { return parameter.PriorityDeath }

// Update splits crumbling bodies, banks spawn credit, scores player kills, and explodes the dead
func (s *DeathSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component
	gs := s.Resource.Game
	audio := s.Resource.Audio.Player

	for _, e := range s.World.Query().With(c.Health).With(c.Position).Execute() {
		if c.Health.MustGet(e).Value > 0 {
			continue
		}
		p := c.Position.MustGet(e).P

		if crumble, ok := c.Crumble.Get(e); ok {
			for i := 0; i < parameter.CrumbleFragments; i++ {
				SpawnAsteroidAt(s.World, p, crumble.Size)
			}
		} else {
			gs.SpawnCredit += parameter.SpawnCreditPerKill
		}

		color := core.ColorWhite
		if col, ok := c.Color.Get(e); ok {
			color = col.Color
		}
		SpawnExplosion(s.World, p, color)
		audio.PlayRandomSample(core.SoundBoom, core.SoundBoomVariants)

		if c.KilledByPlayer.Has(e) {
			gs.AwardKill()
		}

		s.World.DestroyEntity(e)
		s.statKilled.Add(1)
	}
}
