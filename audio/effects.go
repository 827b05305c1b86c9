// Package audio synthesizes short join and leave cues with beep and
// plays them through a shared mixer. Everything is generated; no sample
// assets are shipped.
package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/crowd-drift/vmath"
)

// WaveType selects the oscillator wave shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveNoise
)

// oscillator streams a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a finite oscillator streamer. The noise wave
// ignores freq
func NewOscillator(freq float64, samples int, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(samples)*2654435761 + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s in an attack/release envelope over total samples
func NewEnvelope(s beep.Streamer, total, attack, release int, rate beep.SampleRate) beep.Streamer {
	if attack+release > total {
		attack = total / 2
		release = total - attack
	}
	return &envelope{streamer: s, attack: attack, release: release, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a log-scaled volume effect. Zero or negative
// volume becomes silence instead of math.Log2(0)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateJoinCue builds a bright two-note rising chime played when a
// person lands in the crowd
func CreateJoinCue(rate beep.SampleRate, masterVolume float64) beep.Streamer {
	noteLen := rate.N(joinNoteDuration)
	attack := rate.N(cueAttack)
	release := rate.N(cueRelease)

	low := NewEnvelope(NewOscillator(659.26, noteLen, WaveSine, rate), noteLen, attack, release, rate)
	high := NewEnvelope(NewOscillator(987.77, noteLen, WaveSine, rate), noteLen, attack, release, rate)

	return newVolume(beep.Seq(low, high), joinCueVolume*masterVolume)
}

// CreateLeaveCue builds a soft descending tone with a noise tail for a
// person floating away
func CreateLeaveCue(rate beep.SampleRate, masterVolume float64) beep.Streamer {
	toneLen := rate.N(leaveToneDuration)
	tailLen := rate.N(leaveTailDuration)
	attack := rate.N(cueAttack)
	release := rate.N(cueRelease)

	tone := NewEnvelope(NewOscillator(440.0, toneLen, WaveTriangle, rate), toneLen, attack, toneLen/2, rate)
	tail := NewEnvelope(NewOscillator(0, tailLen, WaveNoise, rate), tailLen, attack, release, rate)

	return newVolume(beep.Mix(
		newVolume(tone, 0.8),
		newVolume(tail, 0.1),
	), leaveCueVolume*masterVolume)
}
