package game

import (
	"log"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// Screen is one top-level mode of the program
type Screen interface {
	// Name identifies the screen in logs
	Name() string
	// MusicTrack is played when the screen becomes active
	MusicTrack() string
	// Update advances the screen; false hands control to Next
	Update(dt float64) bool
	Draw(r engine.Renderer)
	Next() Screen
}

// BattleScreen hosts one simulation session
// Start returns to the title once the game is lost
type BattleScreen struct {
	res *engine.Resource
	sim *Simulation
}

// NewBattleScreen starts a new session
func NewBattleScreen(res *engine.Resource) *BattleScreen {
	return &BattleScreen{res: res, sim: NewSimulation(res)}
}

func (b *BattleScreen) Name() string       { return "battle" }
func (b *BattleScreen) MusicTrack() string { return core.MusicBattle }

// Simulation returns the running session
func (b *BattleScreen) Simulation() *Simulation { return b.sim }

func (b *BattleScreen) Update(dt float64) bool {
	if b.sim.Phase() == engine.PhaseLost && b.res.Input.Provider.Pressed(engine.ButtonStart) {
		return false
	}
	b.sim.Update(dt)
	return true
}

func (b *BattleScreen) Draw(r engine.Renderer) { b.sim.Draw(r) }

func (b *BattleScreen) Next() Screen { return NewTitleScreen(b.res) }

// Manager owns the active screen and switches music on transitions
type Manager struct {
	res     *engine.Resource
	current Screen

	// Debug draws the status registry over every screen
	Debug bool
}

// NewManager starts on the title screen
func NewManager(res *engine.Resource, debug bool) *Manager {
	m := &Manager{res: res, Debug: debug}
	m.switchTo(NewTitleScreen(res))
	return m
}

// Current returns the active screen
func (m *Manager) Current() Screen { return m.current }

// Update advances the active screen and follows its transition
func (m *Manager) Update(dt float64) {
	if !m.current.Update(dt) {
		m.switchTo(m.current.Next())
	}
}

// Draw renders the active screen
func (m *Manager) Draw(r engine.Renderer) {
	m.current.Draw(r)
	if m.Debug {
		drawDiagnostics(m.res.Status, r)
	}
}

func (m *Manager) switchTo(s Screen) {
	m.current = s
	audio := m.res.Audio.Player
	audio.PlayMusic(s.MusicTrack())
	audio.SetMusicVolume(parameter.MusicVolume)
	log.Printf("screen: %s", s.Name())
}
