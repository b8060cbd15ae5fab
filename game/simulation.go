package game

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/system"
)

// Simulation is one game session: a world with every system registered and the opening scene spawned
type Simulation struct {
	World *engine.World
}

// NewSimulation starts a fresh session on shared resources
// Scoring and scheduling state is reset; the RNG stream carries over
func NewSimulation(res *engine.Resource) *Simulation {
	res.Game.Reset()
	res.Time.Delta = 0

	w := engine.NewWorld(res)
	system.RegisterAll(w)
	system.Populate(w)
	return &Simulation{World: w}
}

// Update advances the session by dt seconds
func (s *Simulation) Update(dt float64) {
	s.World.Update(dt)
}

// Draw renders the scene and overlays
func (s *Simulation) Draw(r engine.Renderer) {
	drawScene(s.World, r)
	drawOverlay(s.World, r)
}

// Phase returns the session phase
func (s *Simulation) Phase() engine.GamePhase {
	return s.World.Resource.Game.Phase
}
