package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector, Y up
// Physics in this project runs float-native; there is no fixed-point path
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// PlanarDistSq returns squared distance on the ground plane (X/Z), ignoring height
func PlanarDistSq(a, b Vec3) float64 {
	dx := b.X - a.X
	dz := b.Z - a.Z
	return dx*dx + dz*dz
}

// PlanarDist returns distance on the ground plane (X/Z)
func PlanarDist(a, b Vec3) float64 {
	return math.Sqrt(PlanarDistSq(a, b))
}

// IsFinite reports whether all components are finite numbers
func IsFinite(v Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates linearly between a and b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
