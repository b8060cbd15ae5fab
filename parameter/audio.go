package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Synthesized sample shapes
const (
	ShotFreq       = 880.0
	ShotDuration   = 80 * time.Millisecond
	HitFreq        = 220.0
	HitDuration    = 60 * time.Millisecond
	HurtFreq       = 110.0
	HurtDuration   = 200 * time.Millisecond
	BoomDuration   = 500 * time.Millisecond
	DeadDuration   = 1500 * time.Millisecond
	BombDuration   = 150 * time.Millisecond
	BombFreq       = 330.0
	SampleGain     = 0.3
	VariantPitchUp = 0.06
)

// Music
const (
	MusicBeat    = 250 * time.Millisecond
	MusicGain    = 0.15
	MusicPadGain = 0.05
)
