package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one synthesized sample
// Frequency slides linearly from Freq to EndFreq over Duration
type Tone struct {
	Wave     WaveType
	Freq     float64
	EndFreq  float64
	Duration time.Duration
}

// oscillator generates a raw wave with a linear pitch slide
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newOscillator(Tone{Wave: wave, Freq: freq, EndFreq: freq, Duration: duration}, rate, nil)
}

func newOscillator(t Tone, rate beep.SampleRate, rng *rand.Rand) *oscillator {
	samples := rate.N(t.Duration)
	o := &oscillator{
		freq:     t.Freq,
		duration: samples,
		wave:     t.Wave,
		rate:     rate,
		rng:      rng,
	}
	if samples > 0 {
		o.slide = (t.EndFreq - t.Freq) / float64(samples)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(1, 1))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut ramps the stream linearly down to silence over total samples
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// Synthesize renders a tone at the given gain
// Noise is seeded so the same tone always renders the same samples
func Synthesize(t Tone, gain float64, rate beep.SampleRate, seed uint64) beep.Streamer {
	osc := newOscillator(t, rate, rand.New(rand.NewPCG(seed, seed)))
	shaped := &fadeOut{streamer: osc, total: max(osc.duration, 1)}
	// Gain scales by (1 + Gain)
	return &effects.Gain{Streamer: shaped, Gain: gain - 1}
}
