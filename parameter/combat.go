package parameter

// Weapons
const (
	// MuzzleOffset is the distance ahead of the shooter where bullets appear
	MuzzleOffset = 5.0

	// MuzzleSpeed is added to the shooter's speed
	MuzzleSpeed = 250.0

	BulletRadius      = 2.0
	BulletMaxVelocity = DefaultMaxVelocity

	PlayerFireRate   = 0.1
	PlayerFireSpread = 0.0
	SaucerFireRate   = 0.8
	SaucerFireSpread = 0.15
)

// Bombs
const (
	BombCooldown   = 5.0
	BombFuse       = 1.5
	BombRadius     = 4.0
	BlastMaxRadius = 160.0

	// BlastExpand is the time the blast radius takes to reach BlastMaxRadius
	BlastExpand = 0.6

	// BlastFade is the time the spent ring takes to fade out
	BlastFade = 0.6

	// BlastOncePerTarget limits blast damage to one hit per target per blast
	// When false, a target inside an expanding blast loses health every frame
	BlastOncePerTarget = false
)

// Collision feedback
const (
	FlashLifetime = 0.2

	// GameOverFade is the time the field takes to dim after the player dies
	GameOverFade = 2.0
)
