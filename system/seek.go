package system

import (
	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/physics"
)

// SeekPlayerSystem points hunters at a player inside their detection range
// The first player in store order wins, not the nearest
type SeekPlayerSystem struct {
	engine.SystemBase
}

// NewSeekPlayerSystem creates a new seek player system
func NewSeekPlayerSystem(world *engine.World) engine.System {
	return &SeekPlayerSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *SeekPlayerSystem) Init()         {}
func (s *SeekPlayerSystem) Name() string  { return "seek_player" }
func (s *SeekPlayerSystem) Priority() int { return parameter.PrioritySeekPlayer }

// Update overrides TargetDir toward the first player within range
func (s *SeekPlayerSystem) Update() {
	if s.Halted() {
		return
	}
	c := s.Component

	hunters := s.World.Query().With(c.SeekPlayer).With(c.Position).Execute()
	players := s.World.Query().With(c.PlayerControlled).With(c.Position).Execute()
	if len(players) == 0 {
		return
	}

	for _, e := range hunters {
		self := c.Position.MustGet(e).P
		reach := c.SeekPlayer.MustGet(e).Range
		for _, p := range players {
			target := c.Position.MustGet(p).P
			if target.Dist2(self) <= reach*reach {
				c.TargetDir.Add(e, component.TargetDirComponent{Heading: physics.Bearing(self, target)})
				break
			}
		}
	}
}
