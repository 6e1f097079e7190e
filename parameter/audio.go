package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer, bounding latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Shot Sound
const (
	ShotSoundDuration = 180 * time.Millisecond
	ShotSoundAttack   = 4 * time.Millisecond
	ShotSoundRelease  = 150 * time.Millisecond
	ShotSoundToneFreq = 70.0
)

// Hit Sound
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 90 * time.Millisecond
	HitSoundToneFreq = 880.0
)
