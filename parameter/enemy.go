package parameter

// Drones
const (
	DroneSize        = 15.0
	DroneHealth      = 1
	DroneSpeed       = 200.0
	DroneMaxVelocity = 500.0
	DroneHueMin      = 175.0
	DroneHueMax      = 325.0

	// DroneSpawnDistance places each new flock this far from the field center
	DroneSpawnDistance = 5000.0
	InitialDrones      = 3
)

// Saucers
const (
	SaucerSize        = 18.0
	SaucerHealth      = 5
	SaucerSpeed       = 150.0
	SaucerMaxVelocity = 300.0
	SaucerSeekRange   = 600.0
	SaucerHue         = 0.0

	// SaucerSpawnDistance places saucers just outside the field
	SaucerSpawnDistance = 800.0
)

// Asteroids
const (
	AsteroidMinSides = 5
	AsteroidMaxSides = 11
	AsteroidMinSpeed = 800.0
	AsteroidMaxSpeed = 4000.0
	AsteroidSpin     = 0.75
	AsteroidHue      = 45.0
	AsteroidMaxSat   = 0.8
	AsteroidLight    = 0.7

	// AsteroidHealthDivisor maps size to health
	AsteroidHealthDivisor = 10.0

	// CrumbleThreshold is the size above which a destroyed asteroid splits
	CrumbleThreshold = 10.0

	// CrumbleFragments is the number of fragments spawned on split
	CrumbleFragments = 3

	InitialAsteroids        = 3
	InitialAsteroidDistance = 200.0

	// HeavyAsteroidSize is used for field spawns; fragments halve it per generation
	HeavyAsteroidSize   = 80.0
	HeavyAsteroidPeriod = 45.0

	// HeavyAsteroidDistance is just past the field's half diagonal, so heavies wrap in at an edge
	HeavyAsteroidDistance = 750.0
)
