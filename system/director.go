package system

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
	"github.com/lixenwraith/hydra/status"
)

// DirectorSystem turns spawn credit into drone waves and schedules heavy asteroids
// Credit accrues from kills and from a trickle that grows with play time
// The wave delay shrinks with play time down to MinWaveDelay
type DirectorSystem struct {
	engine.SystemBase

	statWaves  *atomic.Int64
	statCredit *status.AtomicFloat
}

// NewDirectorSystem creates a new director system
func NewDirectorSystem(world *engine.World) engine.System {
	s := &DirectorSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statWaves = s.Resource.Status.Counters.Get(status.DirectorWaves)
	s.statCredit = s.Resource.Status.Gauges.Get(status.DirectorCredit)
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DirectorSystem) Init() {
	gs := s.Resource.Game
	gs.SpawnCredit = 0
	gs.WaveTimer = 0
	gs.WaveCount = 0
	gs.HeavyTimer = 0
	gs.PlayTime = 0
}

// Name returns system's name
func (s *DirectorSystem) Name() string {
	return "director"
}

// Priority returns the system's priority (runs last)
func (s *DirectorSystem) Priority() int {
	return parameter.PriorityDirector
}

// WaveDelay returns the minimum spacing between waves after playTime seconds
func WaveDelay(playTime float64) float64 {
	return math.Max(parameter.MinWaveDelay, parameter.InitialWaveDelay-parameter.WaveDelayDecay*playTime)
}

// Update advances the schedule while playing
func (s *DirectorSystem) Update() {
	gs := s.Resource.Game
	if s.Halted() || gs.Phase != engine.PhasePlaying {
		return
	}
	dt := s.Delta()

	gs.PlayTime += dt
	trickle := parameter.SpawnCreditTrickle + parameter.SpawnCreditTrickleGrowth*gs.PlayTime
	gs.SpawnCredit += trickle * dt
	gs.WaveTimer += dt

	if gs.SpawnCredit >= 1 && gs.WaveTimer >= WaveDelay(gs.PlayTime) {
		s.spawnWave()
	}

	gs.HeavyTimer += dt
	if gs.HeavyTimer >= parameter.HeavyAsteroidPeriod {
		gs.HeavyTimer -= parameter.HeavyAsteroidPeriod
		SpawnAsteroid(s.World, parameter.HeavyAsteroidDistance)
	}

	s.statCredit.Set(gs.SpawnCredit)
}

func (s *DirectorSystem) spawnWave() {
	gs := s.Resource.Game

	count := min(int(math.Floor(gs.SpawnCredit)), parameter.MaxWaveSize)
	gs.SpawnCredit -= float64(count)
	gs.WaveTimer = 0
	gs.WaveCount++

	SpawnDrones(s.World, count, parameter.DroneSpawnDistance)
	saucer := gs.WaveCount%parameter.SaucerEveryWaves == 0
	if saucer {
		SpawnSaucer(s.World)
	}

	s.statWaves.Add(1)
	log.Printf("wave %d: %d drones, saucer %t", gs.WaveCount, count, saucer)
}
