package system

import (
	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// BlastSystem grows blast waves and damages every Health-bearing entity inside the ring while it expands
// Players are not exempt, including the blast's own owner
type BlastSystem struct {
	engine.SystemBase
}

// NewBlastSystem creates a new blast system
func NewBlastSystem(world *engine.World) engine.System {
	return &BlastSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *BlastSystem) Init()         {}
func (s *BlastSystem) Name() string  { return "blast" }
func (s *BlastSystem) Priority() int { return parameter.PriorityBlast }

// Update advances tweens, applies damage, and removes spent blasts
func (s *BlastSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	c := s.Component

	blasts := s.World.Query().With(c.BlastWave).With(c.Position).Execute()
	if len(blasts) == 0 {
		return
	}
	victims := s.World.Query().With(c.Health).With(c.Position).Execute()

	for _, e := range blasts {
		blast := c.BlastWave.MustGet(e)
		center := c.Position.MustGet(e).P

		expanding := blast.Expanding()
		if blast.Advance(dt) {
			s.World.DestroyEntity(e)
			continue
		}
		if !expanding {
			continue
		}

		credit := s.World.Alive(blast.Owner) && c.PlayerControlled.Has(blast.Owner)
		r2 := blast.Radius * blast.Radius
		for _, v := range victims {
			pos, ok := c.Position.Get(v)
			if !ok || pos.P.Dist2(center) > r2 || !blast.MarkHit(v) {
				continue
			}
			health := c.Health.MustGet(v)
			before := health.Value
			health.Value--
			if credit && v != blast.Owner && before > 0 && health.Value <= 0 {
				c.KilledByPlayer.Add(v, component.KilledByPlayerComponent{})
			}
		}
	}
}
