package config

import "github.com/yohamta/donburi/ecs"

// Render layers, back to front.
const (
	LayerBackground ecs.LayerID = iota
	LayerGround
	LayerDefault
	LayerEffects
	LayerHUD

	LayerCount int = iota
)
