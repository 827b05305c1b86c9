package physics

import (
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Body holds per-instance physical state for one simulated person
// Pos.Y is height above the ground plane; the footprint lives on X/Z
type Body struct {
	Pos   vmath.Vec3
	Vel   vmath.Vec3
	Accel vmath.Vec3

	// Size is the footprint radius and also the resting height offset:
	// a settled body rests at GroundLevel + Size
	Size float64

	// Damping is bounce energy retention in [0,1]
	Damping float64

	GroundLevel float64
}

// RestHeight returns the settled vertical position GroundLevel + Size
func (b *Body) RestHeight() float64 {
	return b.GroundLevel + b.Size
}

// Integrate performs one physics step: v += a*dt; p += v*dt
// Non-positive dt is a no-op so a stalled or backwards clock cannot
// corrupt state
func Integrate(b *Body, dt float64) {
	if dt <= 0 {
		return
	}
	b.Vel = vmath.V3Add(b.Vel, vmath.V3Scale(b.Accel, dt))
	b.Pos = vmath.V3Add(b.Pos, vmath.V3Scale(b.Vel, dt))
}

// ResolveGround clamps the body to its rest height and reflects vertical
// velocity with damping; horizontal velocity also loses energy on each
// bounce. Returns true if a ground contact occurred this step
func ResolveGround(b *Body) bool {
	rest := b.RestHeight()
	if b.Pos.Y >= rest {
		return false
	}
	b.Pos.Y = rest
	b.Vel.Y = -b.Vel.Y * b.Damping
	b.Vel.X *= b.Damping
	b.Vel.Z *= b.Damping
	return true
}

// AtRest reports whether all velocity components are below the threshold
// Checked after a bounce to decide the falling phase is over
func AtRest(b *Body, threshold float64) bool {
	return abs(b.Vel.X) < threshold &&
		abs(b.Vel.Y) < threshold &&
		abs(b.Vel.Z) < threshold
}

// Step integrates one tick and resolves ground contact
// Returns true if the body bounced during this step
func Step(b *Body, dt float64) bool {
	if dt <= 0 {
		return false
	}
	Integrate(b, dt)
	return ResolveGround(b)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
