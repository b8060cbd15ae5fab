package engine

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/parameter"
)

// GamePhase is the top-level state of a running game
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhasePaused
	PhaseLost
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState centralizes per-run state that lives outside the entity store
type GameState struct {
	Phase GamePhase

	// Halted gates every gameplay system for the current frame
	// Set while paused and on the frame the pause was toggled
	Halted bool

	// Scoring
	Score     int
	Combo     int
	BestCombo int
	Kills     int

	// Director
	SpawnCredit float64
	WaveTimer   float64
	WaveCount   int
	HeavyTimer  float64
	PlayTime    float64

	// Player
	Player       core.Entity
	BombCooldown float64

	Rand *rand.Rand
}

// NewGameState creates a fresh state; a zero seed draws a random one
func NewGameState(seed uint64) *GameState {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &GameState{
		Rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Reset clears scoring and scheduling for a new game, keeping the RNG stream
func (gs *GameState) Reset() {
	r := gs.Rand
	*gs = GameState{Rand: r}
}

// KillScore returns the points awarded for a kill at the given combo
func KillScore(combo int) int {
	return int(math.Floor(parameter.KillScoreBase * math.Exp(float64(combo)/parameter.KillScoreComboScale)))
}

// AwardKill credits a player kill at the current combo, then extends the combo
func (gs *GameState) AwardKill() int {
	points := KillScore(gs.Combo)
	gs.Score += points
	gs.Kills++
	gs.Combo++
	if gs.Combo > gs.BestCombo {
		gs.BestCombo = gs.Combo
	}
	return points
}

// BreakCombo resets the streak after the player takes a hit
func (gs *GameState) BreakCombo() {
	gs.Combo = 0
}

// RandRange returns a uniform float in [lo, hi)
func (gs *GameState) RandRange(lo, hi float64) float64 {
	return lo + gs.Rand.Float64()*(hi-lo)
}

// RandAngle returns a uniform angle in [0, 2pi)
func (gs *GameState) RandAngle() float64 {
	return gs.Rand.Float64() * 2 * math.Pi
}
