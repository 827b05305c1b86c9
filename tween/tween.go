// Package tween provides bounded scalar interpolation animations with an
// easing curve and a completion signal, driven by the frame tick.
package tween

import (
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Tween interpolates a scalar from start to end over a fixed duration
// Zero or negative duration completes immediately at the end value
type Tween struct {
	start    float64
	end      float64
	duration float64
	elapsed  float64
	ease     vmath.EaseFunc
	done     bool
	onDone   func()
}

// New creates a tween; a nil ease defaults to linear
func New(start, end, duration float64, ease vmath.EaseFunc) *Tween {
	if ease == nil {
		ease = vmath.EaseLinear
	}
	t := &Tween{
		start:    start,
		end:      end,
		duration: duration,
		ease:     ease,
	}
	if duration <= 0 {
		t.done = true
	}
	return t
}

// OnComplete registers a callback fired exactly once when the tween finishes
func (t *Tween) OnComplete(fn func()) *Tween {
	t.onDone = fn
	if t.done && fn != nil {
		t.onDone = nil
		fn()
	}
	return t
}

// Update advances the tween by dt seconds and returns the current value
// Non-positive dt returns the current value unchanged
func (t *Tween) Update(dt float64) float64 {
	if t.done {
		return t.end
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.duration {
		t.done = true
		if t.onDone != nil {
			fn := t.onDone
			t.onDone = nil
			fn()
		}
		return t.end
	}
	frac := t.ease(t.elapsed / t.duration)
	return vmath.Lerp(t.start, t.end, frac)
}

// Value returns the current value without advancing
func (t *Tween) Value() float64 {
	if t.done {
		return t.end
	}
	if t.duration <= 0 {
		return t.end
	}
	frac := t.ease(t.elapsed / t.duration)
	return vmath.Lerp(t.start, t.end, frac)
}

// Done reports whether the tween has reached its end value
func (t *Tween) Done() bool {
	return t.done
}
