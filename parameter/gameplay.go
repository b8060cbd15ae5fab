package parameter

// Score
const (
	// KillScoreBase is multiplied by e^(combo/KillScoreComboScale)
	KillScoreBase       = 100.0
	KillScoreComboScale = 10.0
)

// Director
const (
	// SpawnCreditPerKill is added when a non-crumbling entity dies
	SpawnCreditPerKill = 0.5

	// SpawnCreditTrickle is the credit per second at game start
	SpawnCreditTrickle = 0.05

	// SpawnCreditTrickleGrowth is added to the trickle rate every second of play
	SpawnCreditTrickleGrowth = 0.001

	InitialWaveDelay = 10.0
	MinWaveDelay     = 3.0

	// WaveDelayDecay is subtracted from the wave delay per second of play
	WaveDelayDecay = 0.02

	MaxWaveSize      = 12
	SaucerEveryWaves = 4
)

// Field
const (
	DefaultFieldWidth  = 1280
	DefaultFieldHeight = 720
)
