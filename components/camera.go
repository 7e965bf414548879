package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the shared scroll offset. Only the player writes it.
type CameraData struct {
	Scroll math.Vec2
	Z      float64

	// Recenter eases the vertical scroll back to zero after landing.
	Recenter *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
