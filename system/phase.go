package system

import (
	"log"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
)

// PhaseSystem owns pause toggling and game over detection
// It sets GameState.Halted, which every later gameplay system honors
type PhaseSystem struct {
	engine.SystemBase

	statPhase *status.AtomicString
}

// NewPhaseSystem creates a new phase system
func NewPhaseSystem(world *engine.World) engine.System {
	s := &PhaseSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statPhase = s.Resource.Status.Labels.Get(status.GamePhase)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *PhaseSystem) Init() {
	gs := s.Resource.Game
	gs.Phase = engine.PhasePlaying
	gs.Halted = false
}

// Name returns system's name
func (s *PhaseSystem) Name() string {
	return "phase"
}

// Priority returns the system's priority
func (s *PhaseSystem) Priority() int {
	return parameter.PriorityPhase
}

// Update toggles pause on Start and ends the game when no player remains
func (s *PhaseSystem) Update() {
	gs := s.Resource.Game
	input := s.Resource.Input.Provider
	audio := s.Resource.Audio.Player

	gs.Halted = false

	switch gs.Phase {
	case engine.PhasePaused:
		// The resuming frame still skips simulation
		if input.Pressed(engine.ButtonStart) {
			gs.Phase = engine.PhasePlaying
			audio.SetMusicVolume(parameter.MusicVolume)
		}
		gs.Halted = true

	case engine.PhasePlaying:
		if input.Pressed(engine.ButtonStart) {
			gs.Phase = engine.PhasePaused
			audio.SetMusicVolume(parameter.MusicPausedVolume)
			gs.Halted = true
			break
		}
		if s.Component.PlayerControlled.Count() == 0 {
			gs.Phase = engine.PhaseLost
			audio.PlaySample(core.SoundDead)
			SpawnFade(s.World, parameter.GameOverFade, core.ColorFade)
			log.Printf("game over: score %d, best combo %d, kills %d", gs.Score, gs.BestCombo, gs.Kills)
		}
	}

	s.statPhase.Store(gs.Phase.String())
}
