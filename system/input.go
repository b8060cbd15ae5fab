package system

import (
	"github.com/lixenwraith/hydra/component"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// PlayerInputSystem maps held buttons onto the player's thrust, turn rate, and trigger
type PlayerInputSystem struct {
	engine.SystemBase
}

// NewPlayerInputSystem creates a new player input system
func NewPlayerInputSystem(world *engine.World) engine.System {
	s := &PlayerInputSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PlayerInputSystem) Init() {}

// Name returns system's name
func (s *PlayerInputSystem) Name() string {
	return "input"
}

// Priority returns the system's priority
func (s *PlayerInputSystem) Priority() int {
	return parameter.PriorityPlayerInput
}

// Update polls input once for every player entity
func (s *PlayerInputSystem) Update() {
	if s.Halted() || s.Resource.Game.Phase != engine.PhasePlaying {
		return
	}
	input := s.Resource.Input.Provider
	c := s.Component

	players := s.World.Query().
		With(c.PlayerControlled).
		With(c.Acceleration).
		With(c.Rotation).
		Execute()

	for _, e := range players {
		accel := c.Acceleration.MustGet(e)
		rot := c.Rotation.MustGet(e)

		accel.Accel = 0
		if input.Held(engine.ButtonUp) {
			accel.Accel += parameter.PlayerThrust
		}
		if input.Held(engine.ButtonDown) {
			accel.Accel += parameter.PlayerReverse
		}

		rot.Rate = 0
		if input.Held(engine.ButtonLeft) {
			rot.Rate -= parameter.PlayerTurnRate
		}
		if input.Held(engine.ButtonRight) {
			rot.Rate += parameter.PlayerTurnRate
		}

		if input.Held(engine.ButtonFire) {
			if !c.Firing.Has(e) {
				c.Firing.Add(e, component.FiringComponent{
					Rate:   parameter.PlayerFireRate,
					Spread: parameter.PlayerFireSpread,
				})
			}
		} else {
			c.Firing.Remove(e)
		}
	}
}
