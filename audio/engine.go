package audio

import (
	"log"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/hydra/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Engine plays synthesized samples and looping music through one speaker mixer
// Calls before Init only queue streams on the mixer, which nothing drains
type Engine struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	format beep.Format
	bank   map[string]*beep.Buffer
	rng    *rand.Rand

	music  *beep.Ctrl
	volume *effects.Volume
	track  string
	level  float64

	initialized bool
}

// NewEngine creates an engine with an empty sample bank
func NewEngine() *Engine {
	return &Engine{
		mixer:  &beep.Mixer{},
		format: beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2},
		bank:   make(map[string]*beep.Buffer),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Init opens the speaker and starts the mixer
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	if e.music != nil {
		e.music.Paused = true
	}
	e.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	e.initialized = false
}

// withSpeaker runs fn holding the speaker lock when the speaker is live
// Caller holds e.mu
func (e *Engine) withSpeaker(fn func()) {
	if e.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlaySample starts one sample; unknown names are ignored
func (e *Engine) PlaySample(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	buf := e.sample(name)
	if buf == nil {
		return
	}
	e.withSpeaker(func() {
		e.mixer.Add(buf.Streamer(0, buf.Len()))
	})
}

// PlayRandomSample plays name1..nameN chosen uniformly
func (e *Engine) PlayRandomSample(name string, variants int) {
	if variants < 1 {
		return
	}
	e.mu.Lock()
	v := 1 + e.rng.IntN(variants)
	e.mu.Unlock()

	e.PlaySample(name + strconv.Itoa(v))
}

// sample returns the cached buffer for name, rendering it on first use
// Caller holds e.mu
func (e *Engine) sample(name string) *beep.Buffer {
	if buf, ok := e.bank[name]; ok {
		return buf
	}

	tone, seed, ok := voiceFor(name)
	if !ok {
		log.Printf("audio: unknown sample %q", name)
		e.bank[name] = nil
		return nil
	}

	buf := beep.NewBuffer(e.format)
	buf.Append(Synthesize(tone, parameter.SampleGain, sampleRate, seed))
	e.bank[name] = buf
	return buf
}

// PlayMusic loops a track; the current track keeps playing if requested again
func (e *Engine) PlayMusic(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == e.track && e.music != nil {
		return
	}

	m, ok := newMusic(name, sampleRate)
	if !ok {
		log.Printf("audio: unknown track %q", name)
		return
	}

	e.withSpeaker(func() {
		if e.music != nil {
			e.music.Paused = true
			e.music.Streamer = nil
		}
		e.volume = &effects.Volume{Streamer: m, Base: 2, Volume: e.level}
		e.music = &beep.Ctrl{Streamer: e.volume}
		e.mixer.Add(e.music)
	})
	e.track = name
}

// SetMusicVolume sets the music level in doublings; 0 is unity gain
func (e *Engine) SetMusicVolume(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.level = volume
	if e.volume == nil {
		return
	}
	e.withSpeaker(func() {
		e.volume.Volume = volume
	})
}

// StopMusic silences the current track
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music == nil {
		return
	}
	e.withSpeaker(func() {
		e.music.Paused = true
		e.music.Streamer = nil
	})
	e.music = nil
	e.volume = nil
	e.track = ""
}

// Track returns the playing music track, empty when stopped
func (e *Engine) Track() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.track
}

// Active returns the number of streams on the mixer
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	var n int
	e.withSpeaker(func() {
		n = e.mixer.Len()
	})
	return n
}
