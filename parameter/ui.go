package parameter

// Title screen
const (
	StarCount    = 1500
	StarMaxLayer = 6
	StarSeed     = 8675309
	StarHue      = 360.0
	StarLight    = 0.85

	// StarDrift is the scroll speed in pixels per second of a layer-1 star
	StarDrift = 1.0

	TitleText          = "HYDRA"
	TitleLetterSpacing = 200.0
	TitleLetterY       = 50.0
	TitleBobSize       = 25.0
	TitleBobHalfPeriod = 0.125
	TitleBlink         = 0.5
	TitlePromptLift    = 100.0

	// Story lines type out one rune per DialogRate seconds
	DialogRate   = 0.075
	StoryTimeout = 6.0
)

// HUD
const (
	HealthBarHeight = 16.0
	HUDMargin       = 8.0
	TextBoxWidth    = 50.0
	TextBoxHeight   = 20.0
	TextLineHeight  = 16.0
)

// Music
const (
	MusicVolume       = 0.0
	MusicPausedVolume = -2.0
)
