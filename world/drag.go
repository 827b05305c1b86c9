package world

import (
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Pointer drag wiring. The capability is gated by Config.DragEnabled;
// with it off every call is a no-op, matching the orchestrator variant
// that never wired dragging in.

// BeginDragAt grabs the newest person whose footprint contains the
// ground-plane point. Returns the grabbed identity, or 0 when nothing
// was grabbed
func (w *World) BeginDragAt(x, z float64) uint64 {
	if !w.cfg.DragEnabled || w.dragging != nil {
		return 0
	}

	nowSec := w.clock.Now().Sub(w.epoch).Seconds()
	for i := len(w.people) - 1; i >= 0; i-- {
		p := w.people[i]
		if !p.CollidesWith(vmath.Vec3{X: x, Z: z}, 0) {
			continue
		}
		if p.BeginDrag(nowSec) {
			w.dragging = p
			return p.ID()
		}
	}
	return 0
}

// DragTo moves the grabbed person to new pointer-derived ground
// coordinates, sampling pointer velocity for the release impulse
func (w *World) DragTo(x, z float64) {
	if w.dragging == nil {
		return
	}
	nowSec := w.clock.Now().Sub(w.epoch).Seconds()
	w.dragging.DragTo(vmath.Vec3{
		X: x,
		Y: w.dragging.Body.RestHeight(),
		Z: z,
	}, nowSec)
}

// EndDrag releases the grabbed person with its capped pointer velocity
func (w *World) EndDrag() {
	if w.dragging == nil {
		return
	}
	w.dragging.EndDrag()
	w.dragging = nil
}

// Dragging reports whether a drag is in flight
func (w *World) Dragging() bool {
	return w.dragging != nil
}
