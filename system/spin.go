package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// SpinSystem advances the decorative shape rotation
// Heading and velocity are untouched
type SpinSystem struct {
	engine.SystemBase
}

// NewSpinSystem creates a new spin system
func NewSpinSystem(world *engine.World) engine.System {
	return &SpinSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *SpinSystem) Init()         {}
func (s *SpinSystem) Name() string  { return "spin" }
func (s *SpinSystem) Priority() int { return parameter.PrioritySpin }

// Update accumulates spin offsets
func (s *SpinSystem) Update() {
	if s.Halted() {
		return
	}
	dt := s.Delta()
	spins := s.Component.Spin

	for _, e := range spins.All() {
		spin := spins.MustGet(e)
		spin.Offset += spin.Rate * dt
	}
}
