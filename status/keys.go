package status

// Metric keys shared by the simulation and the debug overlay
const (
	EntityAlive    = "entity.alive"
	DeathKilled    = "death.killed"
	CollisionHits  = "collision.hits"
	BulletFired    = "bullet.fired"
	DirectorWaves  = "director.waves"
	FrameCount     = "frame.count"
	DirectorCredit = "director.credit"
	GamePhase      = "game.phase"
)
