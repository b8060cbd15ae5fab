package system

import (
	"sync/atomic"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
)

// FiringSystem emits bullets from every armed entity and drops player bombs
// Runs only while playing
type FiringSystem struct {
	engine.SystemBase

	statFired *atomic.Int64
}

// NewFiringSystem creates a new firing system
func NewFiringSystem(world *engine.World) engine.System {
	s := &FiringSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statFired = s.Resource.Status.Counters.Get(status.BulletFired)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *FiringSystem) Init() {
	s.Resource.Game.BombCooldown = 0
}

// Name returns system's name
func (s *FiringSystem) Name() string {
	return "firing"
}

// Priority returns the system's priority
func (s *FiringSystem) Priority() int {
	return parameter.PriorityFiring
}

// Update advances weapon clocks, fires due rounds, and handles the bomb button
func (s *FiringSystem) Update() {
	if s.Halted() || s.Resource.Game.Phase != engine.PhasePlaying {
		return
	}
	dt := s.Delta()
	c := s.Component
	audio := s.Resource.Audio.Player

	shooters := s.World.Query().
		With(c.Firing).
		With(c.Position).
		With(c.Angle).
		Execute()

	for _, e := range shooters {
		gun := c.Firing.MustGet(e)
		gun.Time += dt
		if gun.Time > gun.Rate {
			gun.Time -= gun.Rate
			SpawnBullet(s.World, e, gun.Spread)
			s.statFired.Add(1)
			audio.PlayRandomSample(core.SoundShot, core.SoundShotVariants)
		}
	}

	s.dropBomb(dt)
}

func (s *FiringSystem) dropBomb(dt float64) {
	gs := s.Resource.Game
	if gs.BombCooldown > 0 {
		gs.BombCooldown -= dt
	}
	if !s.Resource.Input.Provider.Pressed(engine.ButtonBomb) || gs.BombCooldown > 0 {
		return
	}

	player, _, ok := firstPlayer(&s.Component)
	if !ok || !s.Component.Angle.Has(player) {
		return
	}
	SpawnBomb(s.World, player)
	gs.BombCooldown = parameter.BombCooldown
	s.Resource.Audio.Player.PlaySample(core.SoundBomb)
}
