package parameter

// Player ship
const (
	PlayerSize     = 20.0
	PlayerHealth   = 100
	PlayerThrust   = 1000.0
	PlayerReverse  = -200.0
	PlayerTurnRate = 2.0
)
