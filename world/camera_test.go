package world

import (
	"math"
	"testing"

	"github.com/lixenwraith/crowd-drift/parameter"
)

func TestCameraZoomClampAndApproach(t *testing.T) {
	c := NewCamera()

	c.ZoomBy(1000)
	if c.TargetZoom != parameter.ZoomMax {
		t.Errorf("TargetZoom = %v, want clamped to %v", c.TargetZoom, parameter.ZoomMax)
	}

	// Visible zoom approaches the target monotonically
	prev := c.Zoom
	for i := 0; i < 120; i++ {
		c.Update(1.0 / 60)
		if c.Zoom < prev-1e-9 {
			t.Fatal("zoom moved away from target")
		}
		prev = c.Zoom
	}
	if math.Abs(c.Zoom-parameter.ZoomMax) > 1e-3 {
		t.Errorf("zoom %v did not converge to target %v", c.Zoom, parameter.ZoomMax)
	}

	c.ZoomBy(1e-9)
	if c.TargetZoom != parameter.ZoomMin {
		t.Errorf("TargetZoom = %v, want clamped to %v", c.TargetZoom, parameter.ZoomMin)
	}
}

func TestCameraPanAndInertia(t *testing.T) {
	c := NewCamera()
	c.Pan(10, -5)
	if c.X != 10 || c.Z != -5 {
		t.Errorf("pan landed at (%v, %v), want (10, -5)", c.X, c.Z)
	}

	c.Fling(60, 0)
	for i := 0; i < 600; i++ {
		c.Update(1.0 / 60)
	}
	if c.X <= 10 {
		t.Error("fling did not move the camera")
	}
	if math.Abs(c.VelX) > 0.5 {
		t.Errorf("inertia did not decay: VelX = %v", c.VelX)
	}
}

func TestVisibleBoundsCenteredAndAspect(t *testing.T) {
	c := NewCamera()
	c.X, c.Z = 100, -50
	c.Zoom = 2.0

	b := c.VisibleBounds(120, 40)
	if cx := (b.MinX + b.MaxX) / 2; math.Abs(cx-100) > 1e-9 {
		t.Errorf("bounds X center = %v, want 100", cx)
	}
	if cz := (b.MinZ + b.MaxZ) / 2; math.Abs(cz-(-50)) > 1e-9 {
		t.Errorf("bounds Z center = %v, want -50", cz)
	}
	if w := b.Width(); math.Abs(w-60) > 1e-9 {
		t.Errorf("bounds width = %v, want 120/zoom = 60", w)
	}
	if d := b.Depth(); math.Abs(d-40) > 1e-9 {
		t.Errorf("bounds depth = %v, want rows*2/zoom = 40", d)
	}
}

func TestRadiusScaleWidensWhenZoomedOut(t *testing.T) {
	c := NewCamera()
	c.Zoom = 0.5
	if s := c.RadiusScale(); s <= 1 {
		t.Errorf("zoomed-out radius scale = %v, want > 1", s)
	}
	c.Zoom = 2.0
	if s := c.RadiusScale(); s >= 1 {
		t.Errorf("zoomed-in radius scale = %v, want < 1", s)
	}
}
