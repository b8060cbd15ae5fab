package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/parameter"
)

// track is a looping bass line with an optional kick on every beat
// and an optional sustained sine pad
type track struct {
	notes []float64
	kick  bool
	pad   float64
}

var tracks = map[string]track{
	core.MusicTitle:  {notes: []float64{220, 277.18, 329.63, 277.18, 246.94, 311.13, 369.99, 311.13}, pad: 110},
	core.MusicBattle: {notes: []float64{110, 110, 130.81, 110, 98, 98, 146.83, 130.81}, kick: true},
}

// music streams a track forever
type music struct {
	track    track
	rate     beep.SampleRate
	beat     int
	position int
	phase    float64
}

func newMusic(name string, rate beep.SampleRate) (beep.Streamer, bool) {
	t, ok := tracks[name]
	if !ok {
		return nil, false
	}
	m := &music{track: t, rate: rate, beat: rate.N(parameter.MusicBeat)}
	if t.pad <= 0 {
		return m, true
	}

	pad, err := generators.SineTone(rate, t.pad)
	if err != nil {
		return m, true
	}
	return beep.Mix(m, &effects.Gain{Streamer: pad, Gain: parameter.MusicPadGain - 1}), true
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (m.position / m.beat) % len(m.track.notes)
		inBeat := float64(m.position%m.beat) / float64(m.beat)

		freq := m.track.notes[step]
		bass := 2.0 * (m.phase - 0.5)
		val := bass * (1 - 0.5*inBeat)

		if m.track.kick && inBeat < 0.25 {
			// Pitch-dropping sine thump
			t := float64(m.position%m.beat) / float64(m.rate)
			val += math.Sin(2*math.Pi*60*t*(1-inBeat*2)) * (1 - inBeat*4)
		}

		val *= parameter.MusicGain
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }
