package systems

import (
	"math"

	"github.com/automoto/dashblade/components"
	"github.com/automoto/dashblade/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NudgeCamera scrolls by the player's horizontal displacement dx once the
// player is past the screen center in the direction of travel.
func NudgeCamera(cam *components.CameraData, cc config.CameraConfig, screenWidth, x, dx float64) {
	if cam == nil || dx == 0 {
		return
	}
	screenX := x - cam.Scroll.X
	center := screenWidth / 2
	if (dx > 0 && screenX > center) || (dx < 0 && screenX < center) {
		cam.Scroll.X += dx * cc.ScrollFactor
	}
	cam.Scroll.X = math.Max(0, math.Min(cc.MaxScrollX, cam.Scroll.X))
}

// LiftCamera follows an ascent of height pixels above the ground line.
// Scroll.Y is negative while the view is raised.
func LiftCamera(cam *components.CameraData, cc config.CameraConfig, height float64) {
	if cam == nil {
		return
	}
	cam.Recenter = nil
	lift := math.Max(0, math.Min(height*cc.VerticalFactor, cc.MaxScrollY))
	// never drop the view while still rising
	if -lift < cam.Scroll.Y {
		cam.Scroll.Y = -lift
	}
}

// RecenterCamera eases the vertical scroll back to zero.
func RecenterCamera(cam *components.CameraData, cc config.CameraConfig) {
	if cam == nil || cam.Scroll.Y == 0 {
		return
	}
	if cc.RecenterTime <= 0 {
		cam.Scroll.Y = 0
		return
	}
	cam.Recenter = gween.New(float32(cam.Scroll.Y), 0, cc.RecenterTime, ease.OutQuad)
}

// UpdateCamera advances the recenter tween.
func UpdateCamera(cam *components.CameraData, dt float64) {
	if cam == nil || cam.Recenter == nil {
		return
	}
	y, done := cam.Recenter.Update(float32(dt))
	cam.Scroll.Y = float64(y)
	if done {
		cam.Scroll.Y = 0
		cam.Recenter = nil
	}
}
