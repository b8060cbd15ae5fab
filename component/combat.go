package component

// HealthComponent is remaining hit points; the entity is dead at zero or below
type HealthComponent struct {
	Value int
}

// CollidableComponent marks a damage target for shapes and bullets
type CollidableComponent struct{}

// KilledByPlayerComponent credits the death to the player for scoring
type KilledByPlayerComponent struct{}

// CrumbleComponent spawns smaller asteroids of Size on death
type CrumbleComponent struct {
	Size float64
}

// FiringComponent emits bullets every Rate seconds while present
type FiringComponent struct {
	Rate   float64
	Spread float64
	Time   float64
}
