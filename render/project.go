package render

import (
	"github.com/lixenwraith/crowd-drift/vmath"
	"github.com/lixenwraith/crowd-drift/world"
)

// heightRowFactor converts world height into screen rows so falling and
// exiting people visibly move vertically. Kept small: terminal rows are
// scarce compared to world units
const heightRowFactor = 0.1

// WorldToScreen projects a visual position to terminal cell coordinates
// for a viewport of w x h cells. Rows cover twice the world depth of
// columns to compensate the terminal cell aspect ratio
func WorldToScreen(cam *world.Camera, w, h int, pos vmath.Vec3) (int, int) {
	col := float64(w)/2 + (pos.X-cam.X)*cam.Zoom
	row := float64(h)/2 + (pos.Z-cam.Z)*cam.Zoom*0.5 - pos.Y*cam.Zoom*heightRowFactor
	return int(col + 0.5), int(row + 0.5)
}

// ScreenToWorld inverts the projection onto the ground plane (height 0),
// used to translate pointer cells into drag coordinates
func ScreenToWorld(cam *world.Camera, w, h, col, row int) (float64, float64) {
	if cam.Zoom == 0 {
		return cam.X, cam.Z
	}
	wx := cam.X + (float64(col)-float64(w)/2)/cam.Zoom
	wz := cam.Z + (float64(row)-float64(h)/2)*2/cam.Zoom
	return wx, wz
}
