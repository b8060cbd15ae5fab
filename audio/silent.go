package audio

// Silent is the player used when no audio device is available
type Silent struct{}

func (Silent) PlaySample(string)            {}
func (Silent) PlayRandomSample(string, int) {}
func (Silent) PlayMusic(string)             {}
func (Silent) SetMusicVolume(float64)       {}
func (Silent) StopMusic()                   {}
