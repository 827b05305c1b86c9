package world

import (
	"time"

	"github.com/lixenwraith/crowd-drift/vmath"
)

// JoinScheduler produces join events on a self-randomizing cadence:
// each cycle waits base * (0.5 + random()) so arrivals never fall into a
// mechanically regular rhythm
// It is polled from the frame tick against an injected TimeProvider
// instead of arming wall-clock timers, so teardown is a flag flip and
// tests drive it with a mock clock
type JoinScheduler struct {
	base    time.Duration
	rng     *vmath.FastRand
	next    time.Time
	stopped bool
}

// NewJoinScheduler creates a scheduler whose first event is due one
// randomized interval after now
func NewJoinScheduler(base time.Duration, now time.Time, rng *vmath.FastRand) *JoinScheduler {
	s := &JoinScheduler{
		base: base,
		rng:  rng,
	}
	s.next = now.Add(s.interval())
	return s
}

// Due returns how many join events have become due at now and advances
// the schedule past them. Returns 0 after Stop
func (s *JoinScheduler) Due(now time.Time) int {
	if s.stopped {
		return 0
	}
	count := 0
	for !now.Before(s.next) {
		count++
		s.next = s.next.Add(s.interval())
	}
	return count
}

// Stop permanently silences the scheduler; pending events are dropped
func (s *JoinScheduler) Stop() {
	s.stopped = true
}

func (s *JoinScheduler) interval() time.Duration {
	d := time.Duration(float64(s.base) * (0.5 + s.rng.Float64()))
	if d <= 0 {
		d = time.Millisecond
	}
	return d
}
