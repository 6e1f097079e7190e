package audio

import (
	"math/rand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/artillery/parameter"
)

// NewShot builds the cannon report: a noise crack over a low thump
func NewShot(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	dur := parameter.ShotSoundDuration
	crack := NewEnvelope(NewNoise(dur, rate, rng), dur, parameter.ShotSoundAttack, parameter.ShotSoundRelease/2, rate)

	var layers []beep.Streamer
	layers = append(layers, newVolume(crack, 0.6))
	if tone, err := generators.SineTone(rate, parameter.ShotSoundToneFreq); err == nil {
		thump := NewEnvelope(tone, dur, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
		layers = append(layers, newVolume(thump, 0.8))
	}
	return beep.Take(rate.N(dur), beep.Mix(layers...))
}

// NewHit builds the short chime played when a target is destroyed
func NewHit(rate beep.SampleRate) beep.Streamer {
	dur := parameter.HitSoundDuration
	tone, err := generators.SineTone(rate, parameter.HitSoundToneFreq)
	if err != nil {
		return beep.Silence(rate.N(dur))
	}
	return NewEnvelope(newVolume(tone, 0.5), dur, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
}
