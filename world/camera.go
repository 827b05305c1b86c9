package world

import (
	"math"

	"github.com/lixenwraith/crowd-drift/parameter"
	"github.com/lixenwraith/crowd-drift/placement"
	"github.com/lixenwraith/crowd-drift/vmath"
)

// Camera holds the view transform over the ground plane: a look-at point,
// a zoom with smoothed target, and pan inertia
// It feeds the spawn bounds used by the placement resolver and is
// otherwise orthogonal to the physics core
type Camera struct {
	X, Z float64

	Zoom       float64
	TargetZoom float64

	// Pan inertia, decays after a fling
	VelX, VelZ float64
}

func NewCamera() *Camera {
	return &Camera{
		Zoom:       parameter.ZoomDefault,
		TargetZoom: parameter.ZoomDefault,
	}
}

// Pan moves the look-at point by a world-space delta
func (c *Camera) Pan(dx, dz float64) {
	c.X += dx
	c.Z += dz
}

// Fling sets pan inertia in world units per second
func (c *Camera) Fling(vx, vz float64) {
	c.VelX = vx
	c.VelZ = vz
}

// ZoomBy scales the zoom target, clamped to the configured range
// The visible zoom approaches the target smoothly in Update
func (c *Camera) ZoomBy(factor float64) {
	c.TargetZoom = vmath.Clamp(c.TargetZoom*factor, parameter.ZoomMin, parameter.ZoomMax)
}

// Update advances zoom smoothing and pan inertia by dt seconds
func (c *Camera) Update(dt float64) {
	if dt <= 0 {
		return
	}

	// Exponential approach to the zoom target
	step := parameter.ZoomSnapRate * dt
	if step > 1 {
		step = 1
	}
	c.Zoom += (c.TargetZoom - c.Zoom) * step
	if math.Abs(c.TargetZoom-c.Zoom) < 1e-4 {
		c.Zoom = c.TargetZoom
	}

	c.X += c.VelX * dt
	c.Z += c.VelZ * dt
	decay := 1 - parameter.PanInertiaDamping*dt
	if decay < 0 {
		decay = 0
	}
	c.VelX *= decay
	c.VelZ *= decay
}

// VisibleBounds returns the ground-plane rectangle covered by a viewport
// of viewW x viewH terminal cells. A cell row covers twice the world
// depth of a cell column to compensate the terminal aspect ratio
func (c *Camera) VisibleBounds(viewW, viewH int) placement.Bounds {
	halfW := float64(viewW) / (2 * c.Zoom)
	halfD := float64(viewH) / c.Zoom // rows are twice as tall as columns are wide
	return placement.Bounds{
		MinX: c.X - halfW,
		MaxX: c.X + halfW,
		MinZ: c.Z - halfD,
		MaxZ: c.Z + halfD,
	}
}

// RadiusScale widens the requested spawn footprint as the view zooms out
// so new arrivals keep visible spacing at any zoom level
func (c *Camera) RadiusScale() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return vmath.Clamp(1.0/c.Zoom, 0.5, 2.0)
}
