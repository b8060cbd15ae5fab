package main

import (
	"log"

	"github.com/lixenwraith/hydra/audio"
	"github.com/lixenwraith/hydra/engine"
	"github.com/lixenwraith/hydra/parameter"
)

// openAudio starts the speaker, falling back to silence without a device
func openAudio(mute bool) (engine.AudioPlayer, func()) {
	if mute {
		return audio.Silent{}, func() {}
	}

	e := audio.NewEngine()
	if err := e.Init(); err != nil {
		log.Printf("audio: %v (continuing without sound)", err)
		return audio.Silent{}, func() {}
	}
	return e, e.Close
}

// muteSwitch swaps the live player for silence at runtime
type muteSwitch struct {
	res   *engine.Resource
	live  engine.AudioPlayer
	muted bool
}

// Toggle flips muting; unmuting resumes track
func (m *muteSwitch) Toggle(track string) {
	m.muted = !m.muted
	if m.muted {
		m.live.StopMusic()
		m.res.Audio.Player = audio.Silent{}
		log.Printf("audio: muted")
		return
	}

	m.res.Audio.Player = m.live
	m.live.PlayMusic(track)
	volume := parameter.MusicVolume
	if m.res.Game.Phase == engine.PhasePaused {
		volume = parameter.MusicPausedVolume
	}
	m.live.SetMusicVolume(volume)
	log.Printf("audio: unmuted")
}
