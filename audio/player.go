// Package audio synthesizes the sandbox sound effects on the beep speaker
package audio

import (
	"log"
	"math/rand"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/artillery/parameter"
)

// SampleRate is the speaker rate used by Player
const SampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes one-shot effects onto the speaker
// All Play calls are no-ops until Init succeeds
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
}

// NewPlayer creates an uninitialized player
func NewPlayer(seed int64) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Init opens the speaker; failure leaves the player silent and is returned for logging
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(parameter.AudioBufferDuration)); err != nil {
		log.Printf("[WARN] audio: speaker init failed: %v", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayShot queues the fire sound
func (p *Player) PlayShot() {
	p.play(func() beep.Streamer { return NewShot(SampleRate, p.rng) })
}

// PlayHit queues the target-destroyed chime
func (p *Player) PlayHit() {
	p.play(func() beep.Streamer { return NewHit(SampleRate) })
}

func (p *Player) play(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := build()
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close clears pending sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
