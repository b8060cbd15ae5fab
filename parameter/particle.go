package parameter

// Explosions
const (
	ExplosionParticles   = 500
	ExplosionMinLifetime = 1.5
	ExplosionMaxLifetime = 4.5
	ExplosionMinSpeed    = 100.0
	ExplosionMaxSpeed    = 500.0
)
