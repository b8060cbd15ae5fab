package core

// Sample names understood by the audio collaborator
// Numbered variants are addressed as name + index, e.g. "boom3"
const (
	SoundShot = "shot"
	SoundHit  = "hit"
	SoundHurt = "hurt"
	SoundBoom = "boom"
	SoundDead = "dead"
	SoundBomb = "bomb"
)

// Variant counts per sample
const (
	SoundShotVariants = 3
	SoundHitVariants  = 5
	SoundHurtVariants = 4
	SoundBoomVariants = 5
)

// Music tracks
const (
	MusicTitle  = "title"
	MusicBattle = "battle"
)
