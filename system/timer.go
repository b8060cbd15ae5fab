package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// TimerSystem advances lifecycle timers and destroys expired entities
// It runs even while the game is paused
type TimerSystem struct {
	engine.SystemBase
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *TimerSystem) Init() {}

// Name returns system's name
func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority (runs first)
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

// Update increments timers and handles expiration
func (s *TimerSystem) Update() {
	dt := s.Delta()
	timers := s.Component.Timer

	for _, e := range timers.All() {
		timer, ok := timers.Get(e)
		if !ok {
			continue
		}
		timer.Elapsed += dt
		if timer.Expired() {
			s.World.DestroyEntity(e)
		}
	}
}
