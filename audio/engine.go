package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond

	joinNoteDuration  = 90 * time.Millisecond
	leaveToneDuration = 250 * time.Millisecond
	leaveTailDuration = 180 * time.Millisecond
	cueAttack         = 5 * time.Millisecond
	cueRelease        = 40 * time.Millisecond

	joinCueVolume  = 0.5
	leaveCueVolume = 0.4
)

// Engine owns the speaker and a shared mixer for the crowd cues.
// Initialization failure leaves the engine silent rather than failing
// the whole program; a terminal without audio is a supported setup
type Engine struct {
	mu           sync.Mutex
	mixer        *beep.Mixer
	masterVolume float64
	initialized  bool
	muted        bool
}

func NewEngine() *Engine {
	return &Engine{
		mixer:        &beep.Mixer{},
		masterVolume: 1.0,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup drops all pending cues. The speaker itself has no close
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	e.mixer.Clear()
	e.initialized = false
}

// ToggleMute flips the mute state and reports the new value
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

// PlayJoin queues the arrival chime
func (e *Engine) PlayJoin() {
	e.play(func() beep.Streamer { return CreateJoinCue(sampleRate, e.masterVolume) })
}

// PlayLeave queues the departure tone
func (e *Engine) PlayLeave() {
	e.play(func() beep.Streamer { return CreateLeaveCue(sampleRate, e.masterVolume) })
}

func (e *Engine) play(build func() beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}
	e.mixer.Add(build())
}
