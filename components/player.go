package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64 // config.DirectionLeft or config.DirectionRight

	// Edge memory: set when a discrete action fires, cleared once the button
	// is released while grounded.
	JumpKeyWasPressed bool
	DashKeyWasPressed bool

	// JumpLocked blocks further jumps until landing.
	JumpLocked bool
}

var Player = donburi.NewComponentType[PlayerData]()
