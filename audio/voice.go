package audio

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/hydra/core"
	"github.com/lixenwraith/hydra/parameter"
)

var voices = map[string]Tone{
	core.SoundShot: {Wave: WaveSquare, Freq: parameter.ShotFreq, EndFreq: parameter.ShotFreq / 2, Duration: parameter.ShotDuration},
	core.SoundHit:  {Wave: WaveNoise, Duration: parameter.HitDuration},
	core.SoundHurt: {Wave: WaveSaw, Freq: parameter.HurtFreq, EndFreq: parameter.HurtFreq / 2, Duration: parameter.HurtDuration},
	core.SoundBoom: {Wave: WaveNoise, Duration: parameter.BoomDuration},
	core.SoundDead: {Wave: WaveSaw, Freq: 440, EndFreq: 55, Duration: parameter.DeadDuration},
	core.SoundBomb: {Wave: WaveSquare, Freq: parameter.BombFreq, EndFreq: parameter.BombFreq * 2, Duration: parameter.BombDuration},
}

// voiceFor resolves a sample name such as "boom3" to its tone
// Variant n is pitched VariantPitchUp higher per step; unknown names report false
func voiceFor(name string) (Tone, uint64, bool) {
	if t, ok := voices[name]; ok {
		return t, 1, true
	}

	base := strings.TrimRight(name, "0123456789")
	t, ok := voices[base]
	if !ok || base == name {
		return Tone{}, 0, false
	}
	variant, err := strconv.Atoi(name[len(base):])
	if err != nil || variant < 1 {
		return Tone{}, 0, false
	}

	pitch := 1 + parameter.VariantPitchUp*float64(variant-1)
	t.Freq *= pitch
	t.EndFreq *= pitch
	return t, uint64(variant), true
}
