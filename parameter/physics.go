package parameter

// Kinematics
const (
	// Drag is the quadratic drag coefficient applied against speed
	Drag = 0.01

	// SteerRate is the bounded slew rate toward TargetDir in radians per second
	SteerRate = 1.0

	// DefaultMaxVelocity caps entities that carry MaxVelocity without an explicit value
	DefaultMaxVelocity = 3000.0

	// BoundsBuffer is the inward margin used by StayInBounds
	BoundsBuffer = 25.0
)

// Flocking
const (
	FlockPerception = 75.0
	FlockAvoidance  = 50.0
	FlockCohesion   = 0.005
	FlockSeparation = 0.25
	FlockAlignment  = 0.05
)

// Knockback
const (
	// BumpSpeed is the initial per-frame displacement of a collision knockback
	BumpSpeed = 1.0

	// BumpDecay is subtracted from bump speed every second
	BumpDecay = 1.0
)
