package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityTimer         = 10  // Runs while paused
	PriorityPhase         = 20  // Pause toggle and game over, gates everything after it
	PriorityPlayerInput   = 30
	PriorityFiring        = 40 // Bullets and bombs, before kinematics
	PriorityOrdnance      = 50 // Bomb fuses
	PriorityAcceleration  = 100
	PriorityRotation      = 110
	PrioritySpin          = 120
	PrioritySteering      = 130
	PriorityFlocking      = 140
	PrioritySeekPlayer    = 150 // After flocking, overrides its heading
	PriorityReturnToField = 160
	PriorityBounds        = 170
	PriorityMaxVelocity   = 180
	PriorityMovement      = 190
	PriorityCollision     = 200
	PriorityBlast         = 210
	PriorityDeath         = 300 // After all damage sources
	PriorityCull          = 310
	PriorityDirector      = 400
	PriorityDiagnostics   = 1000
)
