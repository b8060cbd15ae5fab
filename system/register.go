package system

import (
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// RegisterAll adds every simulation system to the world in priority order
func RegisterAll(w *engine.World) {
	for _, ctor := range []func(*engine.World) engine.System{
		NewTimerSystem,
		NewPhaseSystem,
		NewPlayerInputSystem,
		NewFiringSystem,
		NewOrdnanceSystem,
		NewAccelerationSystem,
		NewRotationSystem,
		NewSpinSystem,
		NewSteeringSystem,
		NewFlockingSystem,
		NewSeekPlayerSystem,
		NewReturnToFieldSystem,
		NewBoundsSystem,
		NewMaxVelocitySystem,
		NewMovementSystem,
		NewCollisionSystem,
		NewBlastSystem,
		NewDeathSystem,
		NewCullSystem,
		NewDirectorSystem,
		NewDiagnosticsSystem,
	} {
		w.AddSystem(ctor(w))
	}
}

// Populate creates the opening scene: the player, one drone flock, and three asteroids
func Populate(w *engine.World) {
	SpawnPlayer(w)
	SpawnDrones(w, parameter.InitialDrones, parameter.DroneSpawnDistance)
	for i := 0; i < parameter.InitialAsteroids; i++ {
		SpawnAsteroid(w, parameter.InitialAsteroidDistance)
	}
}
