package physics

import (
	"math"

	"github.com/lixenwraith/crowd-drift/vmath"
)

// Footprint is a circular ground-plane collision extent
type Footprint struct {
	X, Z   float64
	Radius float64
}

// Overlaps reports whether two footprints intersect:
// planar center distance strictly below the radius sum
func (f Footprint) Overlaps(o Footprint) bool {
	dx := o.X - f.X
	dz := o.Z - f.Z
	minDist := f.Radius + o.Radius
	return dx*dx+dz*dz < minDist*minDist
}

// OverlapDepth returns how deep two footprints interpenetrate
// Zero or negative means no overlap
func (f Footprint) OverlapDepth(o Footprint) float64 {
	return f.Radius + o.Radius - math.Hypot(o.X-f.X, o.Z-f.Z)
}

// SeparatePlanar pushes two overlapping bodies apart on the ground plane,
// split evenly, with a small margin so they end strictly separated
// Returns true if the positions were adjusted
func SeparatePlanar(a, b *Body, amplify float64) bool {
	dx := b.Pos.X - a.Pos.X
	dz := b.Pos.Z - a.Pos.Z
	distSq := dx*dx + dz*dz
	minDist := a.Size + b.Size
	if distSq >= minDist*minDist || distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	overlap := (minDist - dist) * amplify
	invDist := 1.0 / dist
	nx, nz := dx*invDist, dz*invDist

	half := overlap * 0.5
	a.Pos.X -= nx * half
	a.Pos.Z -= nz * half
	b.Pos.X += nx * half
	b.Pos.Z += nz * half
	return true
}

// PushApart moves a candidate point directly away from an overlapping
// footprint by the overlap depth scaled by amplify
// Coincident centers get a deterministic pseudo-random direction from rng
// to avoid division by zero
func PushApart(x, z float64, radius float64, other Footprint, amplify float64, rng *vmath.FastRand) (float64, float64) {
	dx := x - other.X
	dz := z - other.Z
	dist := math.Hypot(dx, dz)

	depth := radius + other.Radius - dist
	if depth <= 0 {
		return x, z
	}

	var nx, nz float64
	if dist == 0 {
		angle := rng.Float64() * 2 * math.Pi
		nx, nz = math.Cos(angle), math.Sin(angle)
	} else {
		nx, nz = dx/dist, dz/dist
	}

	push := depth * amplify
	return x + nx*push, z + nz*push
}
